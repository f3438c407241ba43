package services

import (
	"context"
	"time"

	"github.com/ShiftWise/shiftwise_app/internal/apperrors"
	portssvc "github.com/ShiftWise/shiftwise_app/internal/core/ports/services"
	"github.com/ShiftWise/shiftwise_app/internal/dto"
	"github.com/ShiftWise/shiftwise_app/internal/middleware"
	"github.com/ShiftWise/shiftwise_app/internal/platform/config"
	"github.com/golang-jwt/jwt/v5"
)

type authService struct {
	BaseService
	userSvc   portssvc.UserSvcFacade
	jwtSecret string
	jwtExpiry time.Duration
	jwtIssuer string
}

// NewAuthService creates the login service that issues store-scoped tokens.
func NewAuthService(cfg *config.Config, userSvc portssvc.UserSvcFacade) portssvc.AuthSvcFacade {
	return &authService{
		userSvc:   userSvc,
		jwtSecret: cfg.JWTSecret,
		jwtExpiry: cfg.JWTExpiryDuration,
		jwtIssuer: cfg.JWTIssuer,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userSvc.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	expiresAt := now.Add(s.jwtExpiry)
	claims := middleware.StoreClaims{
		StoreID: user.StoreID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UserID,
			Issuer:    s.jwtIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
	if err != nil {
		s.LogError(ctx, err, "failed to sign token", "user_id", user.UserID)
		return nil, apperrors.NewAppError(500, "failed to sign token", err)
	}

	resp := &dto.LoginResponse{
		Token:     signed,
		ExpiresAt: expiresAt,
		User:      dto.ToUserResponse(user),
	}
	s.LogInfo(ctx, "user logged in", "user_id", user.UserID, "store_id", user.StoreID)
	return resp, nil
}
