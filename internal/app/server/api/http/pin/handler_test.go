package pin

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"medvault/internal/domain/pin"
)

// MockServicer is a mock implementation of the pin.Servicer interface for testing
type MockServicer struct {
	mock.Mock
}

func (m *MockServicer) Register(ctx context.Context, name, typ string, content json.RawMessage, metadata json.RawMessage) (*pin.Pin, error) {
	args := m.Called(ctx, name, typ, content, metadata)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pin.Pin), args.Error(1)
}

func (m *MockServicer) Get(ctx context.Context, cid string) (*pin.Pin, error) {
	args := m.Called(ctx, cid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pin.Pin), args.Error(1)
}

func (m *MockServicer) Content(ctx context.Context, cid string) (json.RawMessage, error) {
	args := m.Called(ctx, cid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockServicer) List(ctx context.Context, filter pin.Filter) ([]pin.Pin, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]pin.Pin), args.Error(1)
}

func (m *MockServicer) Delete(ctx context.Context, cid string) error {
	args := m.Called(ctx, cid)
	return args.Error(0)
}

func newTestHandler(service pin.Servicer) *Handler {
	return NewHandler(service, slog.Default(), huma.Middlewares{})
}

func TestHandler_register(t *testing.T) {
	service := new(MockServicer)
	handler := newTestHandler(service)
	content := json.RawMessage(`{"patientId":"P1"}`)

	service.On("Register", mock.Anything, "record.json", "record", content, json.RawMessage(nil)).
		Return(&pin.Pin{CID: "deadbeef", Type: "record"}, nil)

	output, err := handler.register(context.Background(), &registerInput{
		Body: registerRequest{Name: "record.json", Type: "record", Content: content},
	})

	require.NoError(t, err)
	assert.Equal(t, "Ok", output.Body.Status)
	assert.Equal(t, "deadbeef", output.Body.CID)
	service.AssertExpectations(t)
}

func TestHandler_register_InvalidContent(t *testing.T) {
	service := new(MockServicer)
	handler := newTestHandler(service)

	service.On("Register", mock.Anything, "x", "", json.RawMessage(nil), json.RawMessage(nil)).
		Return(nil, pin.ErrInvalidContent)

	_, err := handler.register(context.Background(), &registerInput{
		Body: registerRequest{Name: "x"},
	})

	require.Error(t, err)
	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 422, statusErr.GetStatus())
}

func TestHandler_register_ServiceError(t *testing.T) {
	service := new(MockServicer)
	handler := newTestHandler(service)
	content := json.RawMessage(`{"patientId":"P1"}`)

	service.On("Register", mock.Anything, "record.json", "record", content, json.RawMessage(nil)).
		Return(nil, errors.New("connection refused"))

	output, err := handler.register(context.Background(), &registerInput{
		Body: registerRequest{Name: "record.json", Type: "record", Content: content},
	})

	require.Error(t, err)
	assert.Nil(t, output)
}

func TestHandler_list(t *testing.T) {
	service := new(MockServicer)
	handler := newTestHandler(service)

	service.On("List", mock.Anything, pin.Filter{Type: "record", Search: "blood", Limit: 10}).
		Return([]pin.Pin{{CID: "deadbeef"}}, nil)

	output, err := handler.list(context.Background(), &listInput{Type: "record", Search: "blood", Limit: 10})

	require.NoError(t, err)
	assert.Equal(t, 1, output.Body.Total)
	assert.Equal(t, "deadbeef", output.Body.Items[0].CID)
}

func TestHandler_find_NotFound(t *testing.T) {
	service := new(MockServicer)
	handler := newTestHandler(service)

	service.On("Get", mock.Anything, "missing").Return(nil, pin.ErrNotFound)

	_, err := handler.find(context.Background(), &findInput{CID: "missing"})

	require.Error(t, err)
	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 404, statusErr.GetStatus())
}

func TestHandler_content(t *testing.T) {
	service := new(MockServicer)
	handler := newTestHandler(service)
	payload := json.RawMessage(`{"patientId":"P1"}`)

	service.On("Content", mock.Anything, "deadbeef").Return(payload, nil)

	output, err := handler.content(context.Background(), &contentInput{CID: "deadbeef"})

	require.NoError(t, err)
	assert.JSONEq(t, string(payload), string(output.Body))
}

func TestHandler_delete(t *testing.T) {
	service := new(MockServicer)
	handler := newTestHandler(service)

	service.On("Delete", mock.Anything, "deadbeef").Return(nil)

	output, err := handler.delete(context.Background(), &deleteInput{CID: "deadbeef"})

	require.NoError(t, err)
	assert.Equal(t, "Ok", output.Body.Status)
}
