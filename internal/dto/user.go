package dto

import (
	"time"

	"github.com/himakom/orgadmin_backend/internal/core/domain"
)

// CreateUserRequest defines the data needed to create a login account.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// UpdateUserRequest defines the data allowed for updating a user. Pointers
// distinguish omitted fields from zero values.
type UpdateUserRequest struct {
	Name *string `json:"name"`
	Role *string `json:"role"`
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// UserResponse is the outward representation of a login account.
type UserResponse struct {
	UserID    string    `json:"userID"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToUserResponse converts a domain.User to its response DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Username:  u.Username,
		Name:      u.Name,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

// ToListUsersResponse converts a slice of domain.User to the list DTO.
func ToListUsersResponse(users []domain.User) ListUsersResponse {
	resp := ListUsersResponse{Users: make([]UserResponse, len(users))}
	for i := range users {
		resp.Users[i] = ToUserResponse(&users[i])
	}
	return resp
}
