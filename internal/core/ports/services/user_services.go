package services

import (
	"context"

	"github.com/ShiftWise/shiftwise_app/internal/core/domain"
	"github.com/ShiftWise/shiftwise_app/internal/dto"
)

// UserSvcFacade is the employee-directory interface the scheduling core
// consumes: lookups by identifier and name, plus minimal account management.
type UserSvcFacade interface {
	// CreateUser registers a directory user in the creator's store.
	CreateUser(ctx context.Context, storeID string, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error)

	// GetUser retrieves a user belonging to the caller's store.
	GetUser(ctx context.Context, storeID string, userID string) (*domain.User, error)

	// ListUsers retrieves the store's directory.
	ListUsers(ctx context.Context, storeID string) ([]domain.User, error)

	// Authenticate verifies directory credentials.
	Authenticate(ctx context.Context, username string, password string) (*domain.User, error)
}

// AuthSvcFacade issues store-scoped caller tokens against the directory.
type AuthSvcFacade interface {
	// Login authenticates and returns a JWT carrying the user and store identity.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
