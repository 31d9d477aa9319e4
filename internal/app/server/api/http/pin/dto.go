package pin

import (
	"encoding/json"

	"medvault/internal/domain/pin"
)

type registerInput struct {
	Body registerRequest
}

type registerRequest struct {
	Name     string          `json:"name" doc:"Display name of the pinned payload" minLength:"1"`
	Type     string          `json:"type,omitempty" doc:"Payload category, e.g. record or file"`
	Content  json.RawMessage `json:"content" doc:"JSON payload to pin"`
	Metadata json.RawMessage `json:"metadata,omitempty" doc:"Optional caller metadata"`
}

type registerOutput struct {
	Body registerResponse
}

type registerResponse struct {
	CID    string `json:"cid,omitempty"`
	Status string `json:"status"`
}

type listInput struct {
	Type   string `query:"type" doc:"Filter by payload category; 'all' or empty disables the filter"`
	Search string `query:"search" doc:"Substring match on name and cid"`
	Limit  int    `query:"limit" doc:"Maximum number of items, capped at 100"`
}

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Items []pin.Pin `json:"items"`
	Total int       `json:"total"`
}

type findInput struct {
	CID string `path:"cid" doc:"Content identifier"`
}

type findOutput struct {
	Body findResponse
}

type findResponse struct {
	Status string   `json:"status"`
	Pin    *pin.Pin `json:"pin,omitempty"`
}

type contentInput struct {
	CID string `path:"cid" doc:"Content identifier"`
}

type contentOutput struct {
	Body json.RawMessage
}

type deleteInput struct {
	CID string `path:"cid" doc:"Content identifier"`
}

type deleteOutput struct {
	Body registerResponse
}
