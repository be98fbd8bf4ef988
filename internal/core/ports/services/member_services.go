package services

import (
	"context"
	"io"

	"github.com/himakom/orgadmin_backend/internal/core/domain"
	"github.com/himakom/orgadmin_backend/internal/dto"
)

// MemberSvcFacade manages association members.
type MemberSvcFacade interface {
	CreateMember(ctx context.Context, actor domain.Actor, req dto.CreateMemberRequest) (*domain.Member, error)
	GetMemberByID(ctx context.Context, actor domain.Actor, memberID string) (*domain.Member, error)
	ListMembers(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.Member, error)
	UpdateMember(ctx context.Context, actor domain.Actor, memberID string, req dto.UpdateMemberRequest) (*domain.Member, error)
	DeleteMember(ctx context.Context, actor domain.Actor, memberID string) error
	// UpdateMemberPhoto stores the new photo, updates the row, then removes
	// the previous file best-effort.
	UpdateMemberPhoto(ctx context.Context, actor domain.Actor, memberID string, filename string, content io.Reader) (*domain.Member, error)
	// ExportMembersXLSX renders the full roster as a spreadsheet.
	ExportMembersXLSX(ctx context.Context, actor domain.Actor) ([]byte, error)
}

// StandingSvcFacade recomputes a member's absence count and SP level from
// their attendance history.
type StandingSvcFacade interface {
	// Recompute is a best-effort consistency pass: a missing member is a
	// silent no-op, not an error.
	Recompute(ctx context.Context, memberID string) error
}
