package client

import (
	"context"
	"errors"

	"medvault/internal/domain/record"
)

// Slot names in the durable local store. The vault mirrors its whole record
// collection into one slot and keeps the current user in another, matching
// the snapshot format callers may already have on disk.
const (
	SlotMedicalRecords = "medicalRecords"
	SlotCurrentUser    = "currentUser"
)

var (
	ErrSlotNotFound     = errors.New("slot not found")
	ErrResolveFailed    = errors.New("content resolution failed")
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotAuthenticated = errors.New("not authenticated")
)

// SlotStorage is the durable local key/value store behind the vault. Get
// returns ErrSlotNotFound when the slot was never written.
type SlotStorage interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Delete(key string) error
	Close() error
}

// Resolution is the outcome of resolving a content identifier.
type Resolution struct {
	Success bool
	Data    *record.Data
	Message string
}

// Resolver turns a content identifier into record data. The store does not
// care how (pinning gateway, local registry, test stub); only the
// success/data contract matters.
type Resolver interface {
	Resolve(ctx context.Context, ref string) (*Resolution, error)
}
