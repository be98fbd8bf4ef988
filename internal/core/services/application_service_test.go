package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/himakom/orgadmin_backend/internal/apperrors"
	"github.com/himakom/orgadmin_backend/internal/core/domain"
	"github.com/himakom/orgadmin_backend/internal/core/services"
	"github.com/himakom/orgadmin_backend/internal/dto"
)

func newApplicationFixture() (*MockApplicationRepository, *MockMemberRepository, domain.Actor) {
	return new(MockApplicationRepository), new(MockMemberRepository), domain.Actor{UserID: "reviewer-1", Role: domain.RoleChair}
}

func TestSubmitApplication_CreatesPending(t *testing.T) {
	appRepo, memberRepo, _ := newApplicationFixture()
	svc := services.NewApplicationService(appRepo, memberRepo)

	memberRepo.On("FindMemberByAcademicID", mock.Anything, "2021001").Return(nil, apperrors.ErrNotFound)
	appRepo.On("SaveApplication", mock.Anything, mock.MatchedBy(func(app domain.MembershipApplication) bool {
		return app.Status == domain.ApplicationPending && app.AcademicID == "2021001"
	})).Return(nil)

	app, err := svc.SubmitApplication(context.Background(), dto.SubmitApplicationRequest{
		Name:       "Budi Santoso",
		AcademicID: "2021001",
		Email:      "budi@example.com",
		Department: "Informatics",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationPending, app.Status)
	assert.NotEmpty(t, app.ApplicationID)
	appRepo.AssertExpectations(t)
}

func TestSubmitApplication_RejectsExistingMember(t *testing.T) {
	appRepo, memberRepo, _ := newApplicationFixture()
	svc := services.NewApplicationService(appRepo, memberRepo)

	existing := &domain.Member{MemberID: "m1", AcademicID: "2021001"}
	memberRepo.On("FindMemberByAcademicID", mock.Anything, "2021001").Return(existing, nil)

	_, err := svc.SubmitApplication(context.Background(), dto.SubmitApplicationRequest{
		Name:       "Budi Santoso",
		AcademicID: "2021001",
		Email:      "budi@example.com",
		Department: "Informatics",
	})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	appRepo.AssertNotCalled(t, "SaveApplication", mock.Anything, mock.Anything)
}

func TestApproveApplication_BuildsMemberFromApplication(t *testing.T) {
	appRepo, memberRepo, actor := newApplicationFixture()
	svc := services.NewApplicationService(appRepo, memberRepo)

	app := &domain.MembershipApplication{
		ApplicationID: "app-1",
		Name:          "Budi Santoso",
		AcademicID:    "2021001",
		Email:         "budi@example.com",
		Department:    "Informatics",
		Status:        domain.ApplicationPending,
	}
	appRepo.On("FindApplicationByID", mock.Anything, "app-1").Return(app, nil)
	appRepo.On("ApproveApplication", mock.Anything, "app-1", mock.MatchedBy(func(m domain.Member) bool {
		return m.AcademicID == "2021001" &&
			m.Name == "Budi Santoso" &&
			m.Status == domain.MemberActive &&
			m.JoinYear == time.Now().Year() &&
			m.CreatedBy == actor.UserID
	}), actor.UserID, mock.AnythingOfType("time.Time")).Return(nil)

	member, err := svc.ApproveApplication(context.Background(), actor, "app-1")
	require.NoError(t, err)
	assert.NotEmpty(t, member.MemberID)
	assert.Equal(t, domain.MemberActive, member.Status)
	appRepo.AssertExpectations(t)
}

func TestApproveApplication_ConflictOnRepeat(t *testing.T) {
	appRepo, memberRepo, actor := newApplicationFixture()
	svc := services.NewApplicationService(appRepo, memberRepo)

	app := &domain.MembershipApplication{
		ApplicationID: "app-1",
		AcademicID:    "2021001",
		Status:        domain.ApplicationApproved,
	}
	appRepo.On("FindApplicationByID", mock.Anything, "app-1").Return(app, nil)
	appRepo.On("ApproveApplication", mock.Anything, "app-1", mock.Anything, actor.UserID, mock.AnythingOfType("time.Time")).
		Return(apperrors.ErrConflict)

	_, err := svc.ApproveApplication(context.Background(), actor, "app-1")
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestRejectApplication_PassesNote(t *testing.T) {
	appRepo, memberRepo, actor := newApplicationFixture()
	svc := services.NewApplicationService(appRepo, memberRepo)

	appRepo.On("RejectApplication", mock.Anything, "app-1", "incomplete data", actor.UserID, mock.AnythingOfType("time.Time")).Return(nil)

	err := svc.RejectApplication(context.Background(), actor, "app-1", "incomplete data")
	require.NoError(t, err)
	appRepo.AssertExpectations(t)
}

func TestApplicationReview_RequiresCapability(t *testing.T) {
	appRepo, memberRepo, _ := newApplicationFixture()
	svc := services.NewApplicationService(appRepo, memberRepo)

	// Treasurers cannot review applications.
	treasurer := domain.Actor{UserID: "u2", Role: domain.RoleTreasurer1}

	_, err := svc.ApproveApplication(context.Background(), treasurer, "app-1")
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	err = svc.RejectApplication(context.Background(), treasurer, "app-1", "note")
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	appRepo.AssertNotCalled(t, "FindApplicationByID", mock.Anything, mock.Anything)
}
