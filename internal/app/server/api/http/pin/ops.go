package pin

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) registerOp() huma.Operation {
	return huma.Operation{
		OperationID: "pins-register",
		Method:      http.MethodPost,
		Path:        "/api/v1/pins",
		Summary:     "Pin a JSON payload",
		Description: "Stores the payload under its derived content identifier. Pinning identical content twice returns the existing pin.",
		Tags:        []string{"pins"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "pins-list",
		Method:      http.MethodGet,
		Path:        "/api/v1/pins",
		Summary:     "List pins",
		Description: "Lists pins newest first, optionally filtered by category and a name/cid substring.",
		Tags:        []string{"pins"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "pins-find",
		Method:      http.MethodGet,
		Path:        "/api/v1/pins/{cid}",
		Summary:     "Get pin metadata",
		Tags:        []string{"pins"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) contentOp() huma.Operation {
	return huma.Operation{
		OperationID: "pins-content",
		Method:      http.MethodGet,
		Path:        "/ipfs/{cid}",
		Summary:     "Fetch pinned content",
		Description: "Serves the raw pinned payload, gateway style, so clients can use the registry as their content resolver.",
		Tags:        []string{"pins"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "pins-delete",
		Method:      http.MethodDelete,
		Path:        "/api/v1/pins/{cid}",
		Summary:     "Unpin a payload",
		Tags:        []string{"pins"},
		Middlewares: h.middleware,
	}
}
