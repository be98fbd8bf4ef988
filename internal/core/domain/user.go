package domain

import "time"

// User represents a login account for the application. Members without an
// account exist independently in the members table.
type User struct {
	UserID       string `json:"userID"` // Primary key (UUID)
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Name         string `json:"name"`
	Role         Role   `json:"role"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Soft delete

	// Refresh token state, hashed at rest.
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
}
