package dto

import (
	"time"

	"github.com/himakom/orgadmin_backend/internal/core/domain"
)

// SubmitApplicationRequest is the public membership application form.
type SubmitApplicationRequest struct {
	Name       string `json:"name" binding:"required"`
	AcademicID string `json:"academicID" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Department string `json:"department" binding:"required"`
	Reason     string `json:"reason"`
}

// RejectApplicationRequest carries the mandatory rejection note.
type RejectApplicationRequest struct {
	Note string `json:"note" binding:"required"`
}

// ListApplicationsParams defines query parameters for listing applications.
type ListApplicationsParams struct {
	Status string `form:"status" binding:"omitempty,oneof=PENDING APPROVED REJECTED"`
	Limit  int    `form:"limit,default=20"`
	Offset int    `form:"offset,default=0"`
}

// ApplicationResponse is the outward representation of an application.
type ApplicationResponse struct {
	ApplicationID string     `json:"applicationID"`
	Name          string     `json:"name"`
	AcademicID    string     `json:"academicID"`
	Email         string     `json:"email"`
	Department    string     `json:"department"`
	Reason        string     `json:"reason,omitempty"`
	Status        string     `json:"status"`
	RejectionNote string     `json:"rejectionNote,omitempty"`
	ReviewedBy    string     `json:"reviewedBy,omitempty"`
	ReviewedAt    *time.Time `json:"reviewedAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// ToApplicationResponse converts a domain application to its DTO.
func ToApplicationResponse(a *domain.MembershipApplication) ApplicationResponse {
	return ApplicationResponse{
		ApplicationID: a.ApplicationID,
		Name:          a.Name,
		AcademicID:    a.AcademicID,
		Email:         a.Email,
		Department:    a.Department,
		Reason:        a.Reason,
		Status:        string(a.Status),
		RejectionNote: a.RejectionNote,
		ReviewedBy:    a.ReviewedBy,
		ReviewedAt:    a.ReviewedAt,
		CreatedAt:     a.CreatedAt,
	}
}

// ToApplicationListResponse converts a slice of applications to DTOs.
func ToApplicationListResponse(apps []domain.MembershipApplication) []ApplicationResponse {
	out := make([]ApplicationResponse, len(apps))
	for i := range apps {
		out[i] = ToApplicationResponse(&apps[i])
	}
	return out
}
