package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/himakom/orgadmin_backend/internal/apperrors"
	"github.com/himakom/orgadmin_backend/internal/core/domain"
	portsrepo "github.com/himakom/orgadmin_backend/internal/core/ports/repositories"
	portssvc "github.com/himakom/orgadmin_backend/internal/core/ports/services"
)

// standingService keeps a member's absence count and SP level consistent
// with their attendance history. The level only ever escalates here; manual
// member edits are the sole downgrade path.
type standingService struct {
	BaseService
	memberRepo     portsrepo.MemberRepository
	attendanceRepo portsrepo.AttendanceRepository
}

// NewStandingService creates the standing calculator.
func NewStandingService(memberRepo portsrepo.MemberRepository, attendanceRepo portsrepo.AttendanceRepository) portssvc.StandingSvcFacade {
	return &standingService{memberRepo: memberRepo, attendanceRepo: attendanceRepo}
}

var _ portssvc.StandingSvcFacade = (*standingService)(nil)

// Recompute recounts the member's absences and applies the escalation-only
// level policy. A member that no longer exists is a silent no-op: recompute
// is a consistency pass, not a user-facing operation.
func (s *standingService) Recompute(ctx context.Context, memberID string) error {
	member, err := s.memberRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load member for standing recompute: %w", err)
	}

	absences, err := s.attendanceRepo.CountAbsences(ctx, memberID)
	if err != nil {
		return fmt.Errorf("failed to count absences for member %s: %w", memberID, err)
	}

	targetLevel, targetNote := domain.StandingForAbsences(absences)

	// Level and note change only on escalation; the count is always stored.
	level, note := member.SPLevel, member.SPNote
	if targetLevel > member.SPLevel {
		level, note = targetLevel, targetNote
		s.LogInfo(ctx, "SP level escalated",
			slog.String("member_id", memberID),
			slog.Int("from", member.SPLevel),
			slog.Int("to", targetLevel),
			slog.Int("absences", absences))
	}

	if err := s.memberRepo.UpdateMemberStanding(ctx, memberID, absences, level, note); err != nil {
		return fmt.Errorf("failed to persist standing for member %s: %w", memberID, err)
	}
	return nil
}
