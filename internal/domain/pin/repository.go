package pin

import (
	"context"
	"encoding/json"
)

// Repository persists pins. Create returns ErrAlreadyPinned when the content
// identifier exists; lookups return ErrNotFound for unknown identifiers.
type Repository interface {
	Create(ctx context.Context, pin *Pin, content json.RawMessage) error
	Get(ctx context.Context, cid string) (*Pin, error)
	Content(ctx context.Context, cid string) (json.RawMessage, error)
	List(ctx context.Context, filter Filter) ([]Pin, error)
	Delete(ctx context.Context, cid string) error
}
