package repositories

import (
	"context"

	"github.com/ShiftWise/shiftwise_app/internal/core/domain"
)

// UserReader defines read operations for the employee directory
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a user by their login name.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// ListUsersByStore retrieves every directory user belonging to a store.
	ListUsersByStore(ctx context.Context, storeID string) ([]domain.User, error)
}

// UserWriter defines write operations for the employee directory
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error
}

// UserRepositoryFacade combines all user repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
