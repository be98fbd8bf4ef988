package services

import (
	"context"

	"github.com/himakom/orgadmin_backend/internal/core/domain"
	"github.com/himakom/orgadmin_backend/internal/dto"
)

// ApplicationSvcFacade manages membership applications.
type ApplicationSvcFacade interface {
	// SubmitApplication is the public entry point; no actor required.
	SubmitApplication(ctx context.Context, req dto.SubmitApplicationRequest) (*domain.MembershipApplication, error)
	GetApplicationByID(ctx context.Context, actor domain.Actor, applicationID string) (*domain.MembershipApplication, error)
	ListApplications(ctx context.Context, actor domain.Actor, status domain.ApplicationStatus, limit, offset int) ([]domain.MembershipApplication, error)
	// ApproveApplication creates the member and stamps the application in
	// one transaction. A non-pending application yields ErrConflict.
	ApproveApplication(ctx context.Context, actor domain.Actor, applicationID string) (*domain.Member, error)
	RejectApplication(ctx context.Context, actor domain.Actor, applicationID string, note string) error
}
