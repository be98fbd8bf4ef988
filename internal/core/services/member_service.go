package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/himakom/orgadmin_backend/internal/apperrors"
	"github.com/himakom/orgadmin_backend/internal/core/domain"
	portsrepo "github.com/himakom/orgadmin_backend/internal/core/ports/repositories"
	portssvc "github.com/himakom/orgadmin_backend/internal/core/ports/services"
	"github.com/himakom/orgadmin_backend/internal/dto"
	"github.com/himakom/orgadmin_backend/internal/export"
)

const memberPhotoNamespace = "member-photos"

type memberService struct {
	BaseService
	memberRepo portsrepo.MemberRepository
	fileStore  portssvc.FileStore
}

// NewMemberService creates the member management service.
func NewMemberService(memberRepo portsrepo.MemberRepository, fileStore portssvc.FileStore) portssvc.MemberSvcFacade {
	return &memberService{memberRepo: memberRepo, fileStore: fileStore}
}

var _ portssvc.MemberSvcFacade = (*memberService)(nil)

func (s *memberService) CreateMember(ctx context.Context, actor domain.Actor, req dto.CreateMemberRequest) (*domain.Member, error) {
	if err := s.Authorize(ctx, actor, domain.CapManageMembers); err != nil {
		return nil, err
	}

	if existing, err := s.memberRepo.FindMemberByAcademicID(ctx, req.AcademicID); err == nil && existing != nil {
		return nil, fmt.Errorf("academic id %q already registered: %w", req.AcademicID, apperrors.ErrDuplicate)
	}

	status := domain.MemberStatus(req.Status)
	if req.Status == "" {
		status = domain.MemberActive
	}

	now := time.Now()
	member := domain.Member{
		MemberID:   uuid.NewString(),
		UserID:     req.UserID,
		AcademicID: req.AcademicID,
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
		Position:   req.Position,
		JoinYear:   req.JoinYear,
		Status:     status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.memberRepo.SaveMember(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	s.LogInfo(ctx, "Member created", slog.String("member_id", member.MemberID), slog.String("academic_id", member.AcademicID))
	return &member, nil
}

func (s *memberService) GetMemberByID(ctx context.Context, actor domain.Actor, memberID string) (*domain.Member, error) {
	if err := s.Authorize(ctx, actor, domain.CapViewReports); err != nil {
		return nil, err
	}
	member, err := s.memberRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to get member %s: %w", memberID, err)
	}
	return member, nil
}

func (s *memberService) ListMembers(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.Member, error) {
	if err := s.Authorize(ctx, actor, domain.CapViewReports); err != nil {
		return nil, err
	}
	members, err := s.memberRepo.FindMembers(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return members, nil
}

func (s *memberService) UpdateMember(ctx context.Context, actor domain.Actor, memberID string, req dto.UpdateMemberRequest) (*domain.Member, error) {
	if err := s.Authorize(ctx, actor, domain.CapManageMembers); err != nil {
		return nil, err
	}

	member, err := s.memberRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to load member %s for update: %w", memberID, err)
	}

	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.Email != nil {
		member.Email = *req.Email
	}
	if req.Department != nil {
		member.Department = *req.Department
	}
	if req.Position != nil {
		member.Position = *req.Position
	}
	if req.JoinYear != nil {
		member.JoinYear = *req.JoinYear
	}
	if req.Status != nil {
		member.Status = domain.MemberStatus(*req.Status)
	}
	if req.UserID != nil {
		member.UserID = *req.UserID
	}
	// The edit form is the only path allowed to lower a member's SP level.
	if req.SPLevel != nil {
		member.SPLevel = *req.SPLevel
	}
	if req.SPNote != nil {
		member.SPNote = *req.SPNote
	}
	member.LastUpdatedAt = time.Now()
	member.LastUpdatedBy = actor.UserID

	if err := s.memberRepo.UpdateMember(ctx, *member); err != nil {
		return nil, fmt.Errorf("failed to update member %s: %w", memberID, err)
	}
	return member, nil
}

func (s *memberService) DeleteMember(ctx context.Context, actor domain.Actor, memberID string) error {
	if err := s.Authorize(ctx, actor, domain.CapManageMembers); err != nil {
		return err
	}

	member, err := s.memberRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		return fmt.Errorf("failed to load member %s for delete: %w", memberID, err)
	}

	if err := s.memberRepo.MarkMemberDeleted(ctx, memberID, time.Now(), actor.UserID); err != nil {
		return fmt.Errorf("failed to delete member %s: %w", memberID, err)
	}

	// Cleanup after the row change sticks; a failed delete only logs.
	if member.PhotoPath != "" {
		if err := s.fileStore.Delete(member.PhotoPath); err != nil {
			s.LogWarn(ctx, "Failed to remove member photo after delete",
				slog.String("member_id", memberID), slog.String("path", member.PhotoPath), slog.String("error", err.Error()))
		}
	}

	s.LogInfo(ctx, "Member deleted", slog.String("member_id", memberID))
	return nil
}

func (s *memberService) UpdateMemberPhoto(ctx context.Context, actor domain.Actor, memberID string, filename string, content io.Reader) (*domain.Member, error) {
	if err := s.Authorize(ctx, actor, domain.CapManageMembers); err != nil {
		return nil, err
	}

	member, err := s.memberRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load member %s for photo update: %w", memberID, err)
	}

	// Store first, commit the row change, only then drop the old file. A
	// failure between the first two steps orphans the new file at worst.
	newPath, err := s.fileStore.Store(memberPhotoNamespace, filename, content)
	if err != nil {
		return nil, fmt.Errorf("failed to store member photo: %w", err)
	}

	oldPath := member.PhotoPath
	member.PhotoPath = newPath
	member.LastUpdatedAt = time.Now()
	member.LastUpdatedBy = actor.UserID

	if err := s.memberRepo.UpdateMember(ctx, *member); err != nil {
		return nil, fmt.Errorf("failed to update member photo path: %w", err)
	}

	if oldPath != "" {
		if err := s.fileStore.Delete(oldPath); err != nil {
			s.LogWarn(ctx, "Failed to remove previous member photo",
				slog.String("member_id", memberID), slog.String("path", oldPath), slog.String("error", err.Error()))
		}
	}

	return member, nil
}

func (s *memberService) ExportMembersXLSX(ctx context.Context, actor domain.Actor) ([]byte, error) {
	if err := s.Authorize(ctx, actor, domain.CapViewReports); err != nil {
		return nil, err
	}

	// The export covers the whole roster, so page until exhausted.
	var members []domain.Member
	const pageSize = 200
	for offset := 0; ; offset += pageSize {
		page, err := s.memberRepo.FindMembers(ctx, pageSize, offset)
		if err != nil {
			return nil, fmt.Errorf("failed to list members for export: %w", err)
		}
		members = append(members, page...)
		if len(page) < pageSize {
			break
		}
	}

	report, err := export.BuildMemberListReport(members)
	if err != nil {
		return nil, fmt.Errorf("failed to build member report: %w", err)
	}
	return report, nil
}
