package dto

import (
	"time"

	"github.com/ShiftWise/shiftwise_app/internal/core/domain"
)

// CreateUserRequest defines data for creating a directory user.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"fullName" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=MANAGER STAFF"`
}

// UserResponse is a directory user on the wire. The password hash never leaves
// the service layer.
type UserResponse struct {
	UserID    string          `json:"userID"`
	Username  string          `json:"username"`
	FullName  string          `json:"fullName"`
	StoreID   string          `json:"store"`
	Role      domain.UserRole `json:"role"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ToUserResponse converts a domain user to wire form.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Username:  u.Username,
		FullName:  u.FullName,
		StoreID:   u.StoreID,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// ListUsersResponse wraps a store's directory.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToListUsersResponse converts directory users to wire form.
func ToListUsersResponse(users []domain.User) ListUsersResponse {
	list := make([]UserResponse, len(users))
	for i := range users {
		list[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{Users: list}
}

// LoginRequest carries directory credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued store-scoped token.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}
