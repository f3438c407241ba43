package services

import (
	"context"
	"errors"
	"time"

	"github.com/ShiftWise/shiftwise_app/internal/apperrors"
	"github.com/ShiftWise/shiftwise_app/internal/core/domain"
	portsrepo "github.com/ShiftWise/shiftwise_app/internal/core/ports/repositories"
	portssvc "github.com/ShiftWise/shiftwise_app/internal/core/ports/services"
	"github.com/ShiftWise/shiftwise_app/internal/dto"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates the employee directory service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) CreateUser(ctx context.Context, storeID string, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error) {
	if _, err := s.userRepo.FindUserByUsername(ctx, req.Username); err == nil {
		return nil, apperrors.NewConflictError("username " + req.Username + " already exists")
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.LogError(ctx, err, "failed to hash password")
		return nil, apperrors.NewAppError(500, "failed to hash password", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		StoreID:      storeID,
		Role:         domain.UserRole(req.Role),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "directory user created", "user_id", user.UserID, "role", string(user.Role))
	return &user, nil
}

func (s *userService) GetUser(ctx context.Context, storeID string, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.StoreID != storeID {
		return nil, apperrors.ErrNotFound
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, storeID string) ([]domain.User, error) {
	return s.userRepo.ListUsersByStore(ctx, storeID)
}

func (s *userService) Authenticate(ctx context.Context, username string, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Same failure mode as a bad password so usernames are not probeable.
			return nil, apperrors.ErrForbidden
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, apperrors.ErrForbidden
	}
	return user, nil
}
