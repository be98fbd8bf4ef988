package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID reference
}

// Actor identifies the authenticated user performing an operation, together
// with the role the authorization checks run against. Services receive it
// explicitly instead of reading ambient request state.
type Actor struct {
	UserID string
	Role   Role
}
