package pin

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/exp/slog"
)

const maxListLimit = 100

// Service implements the registry logic around the repository: it derives
// content identifiers, makes pinning idempotent and bounds listings.
type Service struct {
	repo Repository
	log  *slog.Logger
}

type Servicer interface {
	Register(ctx context.Context, name, typ string, content json.RawMessage, metadata json.RawMessage) (*Pin, error)
	Get(ctx context.Context, cid string) (*Pin, error)
	Content(ctx context.Context, cid string) (json.RawMessage, error)
	List(ctx context.Context, filter Filter) ([]Pin, error)
	Delete(ctx context.Context, cid string) error
}

// NewService creates a new pin service.
func NewService(repo Repository, log *slog.Logger) Servicer {
	return &Service{
		repo: repo,
		log:  log.With("component", "pin_service"),
	}
}

// DeriveCID computes the content identifier of a payload: the hex encoded
// blake2b-256 digest of its canonical JSON bytes.
func DeriveCID(content json.RawMessage) string {
	digest := blake2b.Sum256(content)
	return hex.EncodeToString(digest[:])
}

// Register stores a payload under its derived content identifier. Pinning
// the same content twice is idempotent and returns the existing pin.
func (s *Service) Register(ctx context.Context, name, typ string, content json.RawMessage, metadata json.RawMessage) (*Pin, error) {
	if len(content) == 0 || !json.Valid(content) {
		return nil, ErrInvalidContent
	}
	if typ == "" {
		typ = "json"
	}

	p := &Pin{
		CID:       DeriveCID(content),
		Name:      name,
		Type:      typ,
		Size:      int64(len(content)),
		Metadata:  metadata,
		CreatedAt: time.Now().UTC(),
	}

	err := s.repo.Create(ctx, p, content)
	if errors.Is(err, ErrAlreadyPinned) {
		s.log.Debug("content already pinned", "cid", p.CID)
		return s.repo.Get(ctx, p.CID)
	}
	if err != nil {
		s.log.Error("failed to register pin", "cid", p.CID, "error", err)
		return nil, fmt.Errorf("register pin: %w", err)
	}

	s.log.Info("pin registered", "cid", p.CID, "type", p.Type, "size", p.Size)
	return p, nil
}

// Get returns pin metadata by content identifier.
func (s *Service) Get(ctx context.Context, cid string) (*Pin, error) {
	p, err := s.repo.Get(ctx, cid)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to get pin", "cid", cid, "error", err)
		return nil, fmt.Errorf("get pin: %w", err)
	}
	return p, nil
}

// Content returns the raw pinned payload by content identifier.
func (s *Service) Content(ctx context.Context, cid string) (json.RawMessage, error) {
	content, err := s.repo.Content(ctx, cid)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to get pin content", "cid", cid, "error", err)
		return nil, fmt.Errorf("get pin content: %w", err)
	}
	return content, nil
}

// List returns pins matching the filter, newest first. The limit is capped.
func (s *Service) List(ctx context.Context, filter Filter) ([]Pin, error) {
	if filter.Limit <= 0 || filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}
	if filter.Type == "all" {
		filter.Type = ""
	}

	pins, err := s.repo.List(ctx, filter)
	if err != nil {
		s.log.Error("failed to list pins", "error", err)
		return nil, fmt.Errorf("list pins: %w", err)
	}
	return pins, nil
}

// Delete unpins a payload.
func (s *Service) Delete(ctx context.Context, cid string) error {
	if err := s.repo.Delete(ctx, cid); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to delete pin", "cid", cid, "error", err)
		return fmt.Errorf("delete pin: %w", err)
	}

	s.log.Info("pin deleted", "cid", cid)
	return nil
}
