package pin

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"medvault/internal/domain/pin"
)

type Handler struct {
	service    pin.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service pin.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.registerOp(), h.register)
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.contentOp(), h.content)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) register(ctx context.Context, input *registerInput) (*registerOutput, error) {
	p, err := h.service.Register(ctx, input.Body.Name, input.Body.Type, input.Body.Content, input.Body.Metadata)
	if err != nil {
		if errors.Is(err, pin.ErrInvalidContent) {
			return nil, huma.Error422UnprocessableEntity("content must be a non-empty JSON document")
		}
		return nil, err
	}

	return &registerOutput{
		Body: registerResponse{
			CID:    p.CID,
			Status: "Ok",
		},
	}, nil
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	pins, err := h.service.List(ctx, pin.Filter{
		Type:   input.Type,
		Search: input.Search,
		Limit:  input.Limit,
	})
	if err != nil {
		return nil, err
	}

	return &listOutput{
		Body: listResponse{
			Items: pins,
			Total: len(pins),
		},
	}, nil
}

func (h *Handler) find(ctx context.Context, input *findInput) (*findOutput, error) {
	p, err := h.service.Get(ctx, input.CID)
	if err != nil {
		if errors.Is(err, pin.ErrNotFound) {
			return nil, huma.Error404NotFound("pin not found")
		}
		return nil, err
	}

	return &findOutput{
		Body: findResponse{
			Status: "Ok",
			Pin:    p,
		},
	}, nil
}

func (h *Handler) content(ctx context.Context, input *contentInput) (*contentOutput, error) {
	content, err := h.service.Content(ctx, input.CID)
	if err != nil {
		if errors.Is(err, pin.ErrNotFound) {
			return nil, huma.Error404NotFound("pin not found")
		}
		return nil, err
	}

	return &contentOutput{Body: content}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*deleteOutput, error) {
	if err := h.service.Delete(ctx, input.CID); err != nil {
		if errors.Is(err, pin.ErrNotFound) {
			return nil, huma.Error404NotFound("pin not found")
		}
		return nil, err
	}

	return &deleteOutput{
		Body: registerResponse{
			CID:    input.CID,
			Status: "Ok",
		},
	}, nil
}
