package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/himakom/orgadmin_backend/internal/apperrors"
	"github.com/himakom/orgadmin_backend/internal/core/domain"
	portsrepo "github.com/himakom/orgadmin_backend/internal/core/ports/repositories"
	portssvc "github.com/himakom/orgadmin_backend/internal/core/ports/services"
	"github.com/himakom/orgadmin_backend/internal/dto"
)

type attendanceService struct {
	BaseService
	attendanceRepo portsrepo.AttendanceRepository
	eventRepo      portsrepo.EventRepository
	memberRepo     portsrepo.MemberRepository
	standing       portssvc.StandingSvcFacade
}

// NewAttendanceService creates the attendance record service. Every mutation
// runs a synchronous standing recompute for the member involved.
func NewAttendanceService(
	attendanceRepo portsrepo.AttendanceRepository,
	eventRepo portsrepo.EventRepository,
	memberRepo portsrepo.MemberRepository,
	standing portssvc.StandingSvcFacade,
) portssvc.AttendanceSvcFacade {
	return &attendanceService{
		attendanceRepo: attendanceRepo,
		eventRepo:      eventRepo,
		memberRepo:     memberRepo,
		standing:       standing,
	}
}

var _ portssvc.AttendanceSvcFacade = (*attendanceService)(nil)

func (s *attendanceService) CreateRecord(ctx context.Context, actor domain.Actor, req dto.CreateAttendanceRequest) (*domain.AttendanceRecord, error) {
	if err := s.Authorize(ctx, actor, domain.CapManageAttendance); err != nil {
		return nil, err
	}

	if _, err := s.eventRepo.FindEventByID(ctx, req.EventID); err != nil {
		return nil, fmt.Errorf("event lookup failed: %w", err)
	}
	if _, err := s.memberRepo.FindMemberByID(ctx, req.MemberID); err != nil {
		return nil, fmt.Errorf("member lookup failed: %w", err)
	}

	existing, err := s.attendanceRepo.FindRecordByEventAndMember(ctx, req.EventID, req.MemberID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing record: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("member already has a record for this event: %w", apperrors.ErrDuplicate)
	}

	now := time.Now()
	recordedAt := now
	if req.RecordedAt != nil {
		recordedAt = *req.RecordedAt
	}
	record := domain.AttendanceRecord{
		RecordID:   uuid.NewString(),
		EventID:    req.EventID,
		MemberID:   req.MemberID,
		Outcome:    domain.AttendanceOutcome(req.Outcome),
		RecordedAt: recordedAt,
		Note:       req.Note,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.attendanceRepo.SaveRecord(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save attendance record: %w", err)
	}

	s.recomputeStanding(ctx, record.MemberID)
	return &record, nil
}

func (s *attendanceService) GetRecordByID(ctx context.Context, actor domain.Actor, recordID string) (*domain.AttendanceRecord, error) {
	if err := s.Authorize(ctx, actor, domain.CapViewReports); err != nil {
		return nil, err
	}
	record, err := s.attendanceRepo.FindRecordByID(ctx, recordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance record %s: %w", recordID, err)
	}
	return record, nil
}

func (s *attendanceService) ListRecordsByEvent(ctx context.Context, actor domain.Actor, eventID string) ([]domain.AttendanceRecord, error) {
	if err := s.Authorize(ctx, actor, domain.CapViewReports); err != nil {
		return nil, err
	}
	records, err := s.attendanceRepo.FindRecordsByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list records for event %s: %w", eventID, err)
	}
	return records, nil
}

func (s *attendanceService) ListRecordsByMember(ctx context.Context, actor domain.Actor, memberID string) ([]domain.AttendanceRecord, error) {
	if err := s.Authorize(ctx, actor, domain.CapViewReports); err != nil {
		return nil, err
	}
	records, err := s.attendanceRepo.FindRecordsByMember(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to list records for member %s: %w", memberID, err)
	}
	return records, nil
}

func (s *attendanceService) UpdateRecord(ctx context.Context, actor domain.Actor, recordID string, req dto.UpdateAttendanceRequest) (*domain.AttendanceRecord, error) {
	if err := s.Authorize(ctx, actor, domain.CapManageAttendance); err != nil {
		return nil, err
	}

	record, err := s.attendanceRepo.FindRecordByID(ctx, recordID)
	if err != nil {
		return nil, fmt.Errorf("failed to load record %s for update: %w", recordID, err)
	}

	previousMemberID := record.MemberID
	if req.MemberID != nil && *req.MemberID != record.MemberID {
		if _, err := s.memberRepo.FindMemberByID(ctx, *req.MemberID); err != nil {
			return nil, fmt.Errorf("member lookup failed: %w", err)
		}
		existing, err := s.attendanceRepo.FindRecordByEventAndMember(ctx, record.EventID, *req.MemberID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to check existing record: %w", err)
		}
		if existing != nil {
			return nil, fmt.Errorf("member already has a record for this event: %w", apperrors.ErrDuplicate)
		}
		record.MemberID = *req.MemberID
	}
	if req.Outcome != nil {
		record.Outcome = domain.AttendanceOutcome(*req.Outcome)
	}
	if req.RecordedAt != nil {
		record.RecordedAt = *req.RecordedAt
	}
	if req.Note != nil {
		record.Note = *req.Note
	}
	record.LastUpdatedAt = time.Now()
	record.LastUpdatedBy = actor.UserID

	if err := s.attendanceRepo.UpdateRecord(ctx, *record); err != nil {
		return nil, fmt.Errorf("failed to update record %s: %w", recordID, err)
	}

	s.recomputeStanding(ctx, record.MemberID)
	if previousMemberID != record.MemberID {
		// The record moved away from someone; their count changed too.
		s.recomputeStanding(ctx, previousMemberID)
	}
	return record, nil
}

func (s *attendanceService) DeleteRecord(ctx context.Context, actor domain.Actor, recordID string) error {
	if err := s.Authorize(ctx, actor, domain.CapManageAttendance); err != nil {
		return err
	}

	record, err := s.attendanceRepo.FindRecordByID(ctx, recordID)
	if err != nil {
		return fmt.Errorf("failed to load record %s for delete: %w", recordID, err)
	}

	if err := s.attendanceRepo.DeleteRecord(ctx, recordID); err != nil {
		return fmt.Errorf("failed to delete record %s: %w", recordID, err)
	}

	s.recomputeStanding(ctx, record.MemberID)
	return nil
}

// recomputeStanding runs the best-effort consistency pass. Recompute errors
// are logged, never surfaced: the attendance mutation already succeeded.
func (s *attendanceService) recomputeStanding(ctx context.Context, memberID string) {
	if err := s.standing.Recompute(ctx, memberID); err != nil {
		s.LogError(ctx, err, "Standing recompute failed", slog.String("member_id", memberID))
	}
}
