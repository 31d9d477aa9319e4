package pin

import (
	"encoding/json"
	"time"
)

// Pin is one pinned JSON payload in the registry, addressed by its content
// identifier.
type Pin struct {
	CID       string          `json:"cid"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Size      int64           `json:"size"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// Filter narrows a pin listing. Search matches name and cid as a
// case-insensitive substring; an empty or "all" Type matches every type.
type Filter struct {
	Type   string
	Search string
	Limit  int
}
