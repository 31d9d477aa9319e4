package pin

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, pin *Pin, content json.RawMessage) error {
	args := m.Called(ctx, pin, content)
	return args.Error(0)
}

func (m *MockRepository) Get(ctx context.Context, cid string) (*Pin, error) {
	args := m.Called(ctx, cid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Pin), args.Error(1)
}

func (m *MockRepository) Content(ctx context.Context, cid string) (json.RawMessage, error) {
	args := m.Called(ctx, cid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context, filter Filter) ([]Pin, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Pin), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, cid string) error {
	args := m.Called(ctx, cid)
	return args.Error(0)
}

func TestDeriveCID(t *testing.T) {
	content := json.RawMessage(`{"patientId":"P1"}`)

	cid := DeriveCID(content)

	assert.Len(t, cid, 64)
	assert.Equal(t, cid, DeriveCID(content), "derivation must be deterministic")
	assert.NotEqual(t, cid, DeriveCID(json.RawMessage(`{"patientId":"P2"}`)))
}

func TestService_Register(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, slog.Default())
	content := json.RawMessage(`{"patientId":"P1"}`)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *Pin) bool {
		return p.CID == DeriveCID(content) && p.Size == int64(len(content))
	}), content).Return(nil)

	p, err := service.Register(context.Background(), "record.json", "record", content, nil)

	require.NoError(t, err)
	assert.Equal(t, DeriveCID(content), p.CID)
	assert.Equal(t, "record", p.Type)
	repo.AssertExpectations(t)
}

func TestService_Register_Idempotent(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, slog.Default())
	content := json.RawMessage(`{"patientId":"P1"}`)
	cid := DeriveCID(content)
	existing := &Pin{CID: cid, Name: "record.json", Type: "record"}

	repo.On("Create", mock.Anything, mock.Anything, content).Return(ErrAlreadyPinned)
	repo.On("Get", mock.Anything, cid).Return(existing, nil)

	p, err := service.Register(context.Background(), "record.json", "record", content, nil)

	require.NoError(t, err)
	assert.Equal(t, existing, p)
	repo.AssertExpectations(t)
}

func TestService_Register_InvalidContent(t *testing.T) {
	service := NewService(new(MockRepository), slog.Default())

	_, err := service.Register(context.Background(), "x", "record", nil, nil)
	assert.ErrorIs(t, err, ErrInvalidContent)

	_, err = service.Register(context.Background(), "x", "record", json.RawMessage("{broken"), nil)
	assert.ErrorIs(t, err, ErrInvalidContent)
}

func TestService_Register_DefaultsType(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, slog.Default())
	content := json.RawMessage(`{}`)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *Pin) bool {
		return p.Type == "json"
	}), content).Return(nil)

	p, err := service.Register(context.Background(), "blob", "", content, nil)

	require.NoError(t, err)
	assert.Equal(t, "json", p.Type)
}

func TestService_Get_NotFound(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, slog.Default())

	repo.On("Get", mock.Anything, "deadbeef").Return(nil, ErrNotFound)

	_, err := service.Get(context.Background(), "deadbeef")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_List_CapsLimit(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, slog.Default())

	repo.On("List", mock.Anything, Filter{Limit: maxListLimit}).Return([]Pin{}, nil)

	_, err := service.List(context.Background(), Filter{Limit: 100000})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_List_AllTypeMeansNoFilter(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, slog.Default())

	repo.On("List", mock.Anything, Filter{Type: "", Limit: maxListLimit}).Return([]Pin{}, nil)

	_, err := service.List(context.Background(), Filter{Type: "all"})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_Delete(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, slog.Default())

	repo.On("Delete", mock.Anything, "deadbeef").Return(nil)
	require.NoError(t, service.Delete(context.Background(), "deadbeef"))

	repo.On("Delete", mock.Anything, "missing").Return(ErrNotFound)
	assert.ErrorIs(t, service.Delete(context.Background(), "missing"), ErrNotFound)
}

func TestService_Content_WrapsRepoError(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, slog.Default())

	repo.On("Content", mock.Anything, "deadbeef").Return(nil, errors.New("connection reset"))

	_, err := service.Content(context.Background(), "deadbeef")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}
