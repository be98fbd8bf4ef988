package services

import (
	"context"
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

type applicationService struct {
	BaseService
	applicationRepo portsrepo.ApplicationRepository
	memberRepo      portsrepo.MemberRepository
}

// NewApplicationService creates the membership application service.
func NewApplicationService(applicationRepo portsrepo.ApplicationRepository, memberRepo portsrepo.MemberRepository) portssvc.ApplicationSvcFacade {
	return &applicationService{applicationRepo: applicationRepo, memberRepo: memberRepo}
}

var _ portssvc.ApplicationSvcFacade = (*applicationService)(nil)

func (s *applicationService) SubmitApplication(ctx context.Context, req dto.SubmitApplicationRequest) (*domain.MembershipApplication, error) {
	if existing, err := s.memberRepo.FindMemberByAcademicID(ctx, req.AcademicID); err == nil && existing != nil {
		return nil, fmt.Errorf("academic id %q already belongs to a member: %w", req.AcademicID, apperrors.ErrDuplicate)
	}

	app := domain.MembershipApplication{
		ApplicationID: uuid.NewString(),
		Name:          req.Name,
		AcademicID:    req.AcademicID,
		Email:         req.Email,
		Department:    req.Department,
		Reason:        req.Reason,
		Status:        domain.ApplicationPending,
		CreatedAt:     time.Now(),
	}

	if err := s.applicationRepo.SaveApplication(ctx, app); err != nil {
		return nil, fmt.Errorf("failed to save application: %w", err)
	}

	s.LogInfo(ctx, "Application submitted",
		slog.String("application_id", app.ApplicationID),
		slog.String("academic_id", app.AcademicID))
	return &app, nil
}

func (s *applicationService) GetApplicationByID(ctx context.Context, actor domain.Actor, applicationID string) (*domain.MembershipApplication, error) {
	if err := s.Authorize(ctx, actor, domain.CapReviewApplications); err != nil {
		return nil, err
	}
	app, err := s.applicationRepo.FindApplicationByID(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get application %s: %w", applicationID, err)
	}
	return app, nil
}

func (s *applicationService) ListApplications(ctx context.Context, actor domain.Actor, status domain.ApplicationStatus, limit, offset int) ([]domain.MembershipApplication, error) {
	if err := s.Authorize(ctx, actor, domain.CapReviewApplications); err != nil {
		return nil, err
	}
	apps, err := s.applicationRepo.FindApplications(ctx, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return apps, nil
}

func (s *applicationService) ApproveApplication(ctx context.Context, actor domain.Actor, applicationID string) (*domain.Member, error) {
	if err := s.Authorize(ctx, actor, domain.CapReviewApplications); err != nil {
		return nil, err
	}

	app, err := s.applicationRepo.FindApplicationByID(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load application %s: %w", applicationID, err)
	}

	now := time.Now()
	member := domain.Member{
		MemberID:   uuid.NewString(),
		AcademicID: app.AcademicID,
		Name:       app.Name,
		Email:      app.Email,
		Department: app.Department,
		JoinYear:   now.Year(),
		Status:     domain.MemberActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	// The status guard lives in the repository transaction; a repeated
	// approval surfaces as ErrConflict with no second member row.
	if err := s.applicationRepo.ApproveApplication(ctx, applicationID, member, actor.UserID, now); err != nil {
		return nil, fmt.Errorf("failed to approve application %s: %w", applicationID, err)
	}

	s.LogInfo(ctx, "Application approved",
		slog.String("application_id", applicationID),
		slog.String("member_id", member.MemberID))
	return &member, nil
}

func (s *applicationService) RejectApplication(ctx context.Context, actor domain.Actor, applicationID string, note string) error {
	if err := s.Authorize(ctx, actor, domain.CapReviewApplications); err != nil {
		return err
	}

	if err := s.applicationRepo.RejectApplication(ctx, applicationID, note, actor.UserID, time.Now()); err != nil {
		return fmt.Errorf("failed to reject application %s: %w", applicationID, err)
	}

	s.LogInfo(ctx, "Application rejected", slog.String("application_id", applicationID))
	return nil
}
