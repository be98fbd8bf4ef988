package dto

import "time"

// LoginRequest carries the credentials for password login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the access token and the authenticated account.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// RefreshRequest identifies the account whose refresh token cookie should be
// rotated.
type RefreshRequest struct {
	UserID string `json:"userID" binding:"required,uuid"`
}

// RefreshResponse returns the rotated access token.
type RefreshResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
