package repositories

import (
	"context"
	"time"

	"github.com/himakom/orgadmin_backend/internal/core/domain"
)

// ApplicationRepository persists membership applications. The review methods
// run the status guard and the member insert inside one database transaction
// so a retried approval can never produce a second member.
type ApplicationRepository interface {
	SaveApplication(ctx context.Context, app domain.MembershipApplication) error
	FindApplicationByID(ctx context.Context, applicationID string) (*domain.MembershipApplication, error)
	FindApplications(ctx context.Context, status domain.ApplicationStatus, limit, offset int) ([]domain.MembershipApplication, error)
	// ApproveApplication flips a PENDING application to APPROVED and inserts
	// the member atomically. Returns apperrors.ErrConflict when the
	// application is no longer pending.
	ApproveApplication(ctx context.Context, applicationID string, member domain.Member, reviewerUserID string, reviewedAt time.Time) error
	// RejectApplication flips a PENDING application to REJECTED with the
	// note. Returns apperrors.ErrConflict when no longer pending.
	RejectApplication(ctx context.Context, applicationID string, note string, reviewerUserID string, reviewedAt time.Time) error
}
