package repositories

import (
	"context"
	"time"

	"github.com/himakom/orgadmin_backend/internal/core/domain"
)

// MemberRepository persists association members.
type MemberRepository interface {
	SaveMember(ctx context.Context, member domain.Member) error
	FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error)
	FindMemberByAcademicID(ctx context.Context, academicID string) (*domain.Member, error)
	FindMembers(ctx context.Context, limit, offset int) ([]domain.Member, error)
	UpdateMember(ctx context.Context, member domain.Member) error
	// UpdateMemberStanding writes the derived standing columns only. The
	// caller passes the level and note that must end up stored, so a
	// non-escalating recompute passes the current values through unchanged.
	UpdateMemberStanding(ctx context.Context, memberID string, absenceCount int, spLevel int, spNote string) error
	MarkMemberDeleted(ctx context.Context, memberID string, deletedAt time.Time, deleterUserID string) error
}
