package dto

import (
	"time"

	"github.com/himakom/orgadmin_backend/internal/core/domain"
)

// CreateMemberRequest defines the data needed to register a member directly.
type CreateMemberRequest struct {
	AcademicID string `json:"academicID" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Department string `json:"department" binding:"required"`
	Position   string `json:"position"`
	JoinYear   int    `json:"joinYear" binding:"required,min=1990"`
	Status     string `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE ALUMNI"`
	UserID     string `json:"userID" binding:"omitempty,uuid"`
}

// UpdateMemberRequest defines the editable member fields. SPLevel and SPNote
// are included because the edit form is the only path that may lower a
// member's standing.
type UpdateMemberRequest struct {
	Name       *string `json:"name"`
	Email      *string `json:"email" binding:"omitempty,email"`
	Department *string `json:"department"`
	Position   *string `json:"position"`
	JoinYear   *int    `json:"joinYear" binding:"omitempty,min=1990"`
	Status     *string `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE ALUMNI"`
	UserID     *string `json:"userID" binding:"omitempty,uuid"`
	SPLevel    *int    `json:"spLevel" binding:"omitempty,min=0,max=3"`
	SPNote     *string `json:"spNote"`
}

// ListMembersParams defines query parameters for listing members.
type ListMembersParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// MemberResponse is the outward representation of a member.
type MemberResponse struct {
	MemberID     string    `json:"memberID"`
	UserID       string    `json:"userID,omitempty"`
	AcademicID   string    `json:"academicID"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Department   string    `json:"department"`
	Position     string    `json:"position,omitempty"`
	JoinYear     int       `json:"joinYear"`
	Status       string    `json:"status"`
	PhotoPath    string    `json:"photoPath,omitempty"`
	AbsenceCount int       `json:"absenceCount"`
	SPLevel      int       `json:"spLevel"`
	SPNote       string    `json:"spNote,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ListMembersResponse wraps the list of members.
type ListMembersResponse struct {
	Members []MemberResponse `json:"members"`
}

// ToMemberResponse converts a domain.Member to its response DTO.
func ToMemberResponse(m *domain.Member) MemberResponse {
	return MemberResponse{
		MemberID:     m.MemberID,
		UserID:       m.UserID,
		AcademicID:   m.AcademicID,
		Name:         m.Name,
		Email:        m.Email,
		Department:   m.Department,
		Position:     m.Position,
		JoinYear:     m.JoinYear,
		Status:       string(m.Status),
		PhotoPath:    m.PhotoPath,
		AbsenceCount: m.AbsenceCount,
		SPLevel:      m.SPLevel,
		SPNote:       m.SPNote,
		CreatedAt:    m.CreatedAt,
	}
}

// ToListMembersResponse converts a slice of domain.Member to the list DTO.
func ToListMembersResponse(members []domain.Member) ListMembersResponse {
	resp := ListMembersResponse{Members: make([]MemberResponse, len(members))}
	for i := range members {
		resp.Members[i] = ToMemberResponse(&members[i])
	}
	return resp
}
