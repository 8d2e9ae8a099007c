package user

import (
	"context"

	"go.uber.org/zap"

	domain "kitchen-control-backend/internal/domain/user"
	apperrors "kitchen-control-backend/pkg/errors"
	"kitchen-control-backend/pkg/logger"
)

// Repository defines the data access capability the user listing needs.
// Implementations own persistence and query execution (PostgreSQL or SQLite
// through GORM, Redis) and decide the enumeration order.
type Repository interface {
	FindAll(ctx context.Context) ([]domain.User, error) // Retrieve every persisted user
}

// Usecase defines the interface for user read operations.
type Usecase interface {
	ListUsers(ctx context.Context) (*ListUsersResponse, error)
}

// Service implements Usecase on top of a Repository.
// It holds no mutable state and is safe for concurrent use.
type Service struct {
	repo Repository  // Repository for data access
	log  *zap.Logger // Logger for structured logging
}

// New creates a new instance of Service with the provided repository and logger.
func New(r Repository, log *zap.Logger) *Service {
	return &Service{repo: r, log: log}
}

// ListUsers returns all users in the order the repository yields them.
// A repository failure is returned as a StorageUnavailableError; no partial
// result is ever returned.
func (s *Service) ListUsers(ctx context.Context) (*ListUsersResponse, error) {
	log := logger.WithContext(ctx, s.log)
	log.Debug("listing users")

	domainUsers, err := s.repo.FindAll(ctx)
	if err != nil {
		log.Error("failed to list users", zap.Error(err))
		return nil, apperrors.NewStorageUnavailableError("user store", err)
	}

	users := make([]User, len(domainUsers))
	for i, du := range domainUsers {
		users[i] = User{
			ID:   du.ID,
			Name: du.Name,
		}
	}

	log.Debug("listed users", zap.Int("count", len(users)))
	return &ListUsersResponse{
		Users: users,
	}, nil
}
