package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"medvault/internal/domain/pin"
)

type PinRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewPinRepository(storage *Storage, log *slog.Logger) *PinRepository {
	return &PinRepository{
		pool: storage.Pool(),
		log:  log.With("component", "pin_repository"),
	}
}

func (r *PinRepository) Create(ctx context.Context, p *pin.Pin, content json.RawMessage) error {
	const query = `
		INSERT INTO pins (cid, name, type, size, metadata, content, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		p.CID, p.Name, p.Type, p.Size, p.Metadata, content, p.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return pin.ErrAlreadyPinned
		}
		r.log.Error("failed to insert pin", "cid", p.CID, "error", err)
		return fmt.Errorf("insert pin: %w", err)
	}

	return nil
}

func (r *PinRepository) Get(ctx context.Context, cid string) (*pin.Pin, error) {
	const query = `
		SELECT cid, name, type, size, metadata, created_at
		FROM pins
		WHERE cid = $1`

	var p pin.Pin
	err := r.pool.QueryRow(ctx, query, cid).Scan(
		&p.CID, &p.Name, &p.Type, &p.Size, &p.Metadata, &p.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, pin.ErrNotFound
	}
	if err != nil {
		r.log.Error("failed to get pin", "cid", cid, "error", err)
		return nil, fmt.Errorf("get pin: %w", err)
	}

	return &p, nil
}

func (r *PinRepository) Content(ctx context.Context, cid string) (json.RawMessage, error) {
	const query = `SELECT content FROM pins WHERE cid = $1`

	var content json.RawMessage
	err := r.pool.QueryRow(ctx, query, cid).Scan(&content)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, pin.ErrNotFound
	}
	if err != nil {
		r.log.Error("failed to get pin content", "cid", cid, "error", err)
		return nil, fmt.Errorf("get pin content: %w", err)
	}

	return content, nil
}

func (r *PinRepository) List(ctx context.Context, filter pin.Filter) ([]pin.Pin, error) {
	query := `
		SELECT cid, name, type, size, metadata, created_at
		FROM pins
		WHERE 1=1`
	args := []any{}

	if filter.Type != "" {
		args = append(args, filter.Type)
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+escapeLikePattern(filter.Search)+"%")
		query += fmt.Sprintf(" AND (name ILIKE $%d OR cid ILIKE $%d)", len(args), len(args))
	}

	query += " ORDER BY created_at DESC"

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("failed to list pins", "error", err)
		return nil, fmt.Errorf("list pins: %w", err)
	}
	defer rows.Close()

	pins := make([]pin.Pin, 0)
	for rows.Next() {
		var p pin.Pin
		if err := rows.Scan(&p.CID, &p.Name, &p.Type, &p.Size, &p.Metadata, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan pin: %w", err)
		}
		pins = append(pins, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pins: %w", err)
	}

	return pins, nil
}

// escapeLikePattern quotes the LIKE metacharacters so a search term matches
// them literally instead of as wildcards.
func escapeLikePattern(s string) string {
	return likeEscaper.Replace(s)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *PinRepository) Delete(ctx context.Context, cid string) error {
	const query = `DELETE FROM pins WHERE cid = $1`

	tag, err := r.pool.Exec(ctx, query, cid)
	if err != nil {
		r.log.Error("failed to delete pin", "cid", cid, "error", err)
		return fmt.Errorf("delete pin: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pin.ErrNotFound
	}

	return nil
}
