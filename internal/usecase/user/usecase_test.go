package user

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	domain "kitchen-control-backend/internal/domain/user"
	apperrors "kitchen-control-backend/pkg/errors"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func setupTestUsecase(t *testing.T) (*Service, *MockRepository) {
	mockRepo := new(MockRepository)
	logger := zaptest.NewLogger(t)
	uc := New(mockRepo, logger)
	return uc, mockRepo
}

func TestListUsers_Success(t *testing.T) {
	uc, mockRepo := setupTestUsecase(t)
	ctx := context.Background()

	mockRepo.On("FindAll", ctx).Return([]domain.User{
		{ID: 1, Name: "Alice"},
		{ID: 2, Name: "Bob"},
	}, nil).Once()

	resp, err := uc.ListUsers(ctx)

	require.NoError(t, err)
	want := []User{{ID: 1, Name: "Alice"}, {ID: 2, Name: "Bob"}}
	if diff := cmp.Diff(want, resp.Users); diff != "" {
		t.Errorf("ListUsers() mismatch (-want +got):\n%s", diff)
	}
	mockRepo.AssertExpectations(t)
}

func TestListUsers_PreservesStoreOrder(t *testing.T) {
	uc, mockRepo := setupTestUsecase(t)
	ctx := context.Background()

	stored := []domain.User{
		{ID: 9, Name: "Zed"},
		{ID: 3, Name: "Carol"},
		{ID: 7, Name: "Alice"},
		{ID: 3, Name: "Carol"},
	}
	mockRepo.On("FindAll", ctx).Return(stored, nil)

	resp, err := uc.ListUsers(ctx)

	require.NoError(t, err)
	require.Len(t, resp.Users, len(stored))
	for i, u := range stored {
		assert.Equal(t, u.ID, resp.Users[i].ID)
		assert.Equal(t, u.Name, resp.Users[i].Name)
	}
}

func TestListUsers_EmptyStore(t *testing.T) {
	tests := []struct {
		name   string
		stored []domain.User
	}{
		{name: "empty slice", stored: []domain.User{}},
		{name: "nil slice", stored: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, mockRepo := setupTestUsecase(t)
			ctx := context.Background()

			if tt.stored == nil {
				mockRepo.On("FindAll", ctx).Return(nil, nil)
			} else {
				mockRepo.On("FindAll", ctx).Return(tt.stored, nil)
			}

			resp, err := uc.ListUsers(ctx)

			require.NoError(t, err)
			require.NotNil(t, resp)
			assert.NotNil(t, resp.Users)
			assert.Empty(t, resp.Users)
		})
	}
}

func TestListUsers_StorageError(t *testing.T) {
	uc, mockRepo := setupTestUsecase(t)
	ctx := context.Background()

	cause := errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")
	mockRepo.On("FindAll", ctx).Return([]domain.User{{ID: 1, Name: "Alice"}}, cause).Once()

	resp, err := uc.ListUsers(ctx)

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, apperrors.IsStorageUnavailable(err))
	assert.ErrorIs(t, err, cause)

	var storageErr *apperrors.StorageUnavailableError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "user store", storageErr.Store)

	// No retry.
	mockRepo.AssertNumberOfCalls(t, "FindAll", 1)
}

func TestListUsers_Idempotent(t *testing.T) {
	uc, mockRepo := setupTestUsecase(t)
	ctx := context.Background()

	mockRepo.On("FindAll", ctx).Return([]domain.User{
		{ID: 1, Name: "Alice"},
		{ID: 2, Name: "Bob"},
	}, nil)

	first, err := uc.ListUsers(ctx)
	require.NoError(t, err)
	second, err := uc.ListUsers(ctx)
	require.NoError(t, err)

	assert.Equal(t, first.Users, second.Users)
	mockRepo.AssertNumberOfCalls(t, "FindAll", 2)
}

func TestListUsers_Concurrent(t *testing.T) {
	uc, mockRepo := setupTestUsecase(t)

	mockRepo.On("FindAll", mock.Anything).Return([]domain.User{
		{ID: 1, Name: "Alice"},
		{ID: 2, Name: "Bob"},
	}, nil)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := uc.ListUsers(context.Background())
			assert.NoError(t, err)
			assert.Len(t, resp.Users, 2)
		}()
	}
	wg.Wait()
}
