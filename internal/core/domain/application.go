package domain

import "time"

// ApplicationStatus is the membership application lifecycle state. Approved
// and rejected are terminal.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "PENDING"
	ApplicationApproved ApplicationStatus = "APPROVED"
	ApplicationRejected ApplicationStatus = "REJECTED"
)

// MembershipApplication is a pending request to become a member. Approval
// copies its fields into a new Member row and stamps reviewer + timestamp.
type MembershipApplication struct {
	ApplicationID string            `json:"applicationID"` // Primary key (UUID)
	Name          string            `json:"name"`
	AcademicID    string            `json:"academicID"`
	Email         string            `json:"email"`
	Department    string            `json:"department"`
	Reason        string            `json:"reason,omitempty"`
	Status        ApplicationStatus `json:"status"`
	RejectionNote string            `json:"rejectionNote,omitempty"`

	ReviewedBy string     `json:"reviewedBy,omitempty"`
	ReviewedAt *time.Time `json:"reviewedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}
