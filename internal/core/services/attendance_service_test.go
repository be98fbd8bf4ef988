package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/himakom/orgadmin_backend/internal/apperrors"
	"github.com/himakom/orgadmin_backend/internal/core/domain"
	"github.com/himakom/orgadmin_backend/internal/core/services"
	"github.com/himakom/orgadmin_backend/internal/dto"
)

type attendanceFixture struct {
	attendanceRepo *MockAttendanceRepository
	eventRepo      *MockEventRepository
	memberRepo     *MockMemberRepository
	standing       *MockStandingService
	actor          domain.Actor
}

func newAttendanceFixture() attendanceFixture {
	return attendanceFixture{
		attendanceRepo: new(MockAttendanceRepository),
		eventRepo:      new(MockEventRepository),
		memberRepo:     new(MockMemberRepository),
		standing:       new(MockStandingService),
		actor:          domain.Actor{UserID: "u1", Role: domain.RoleSecretary1},
	}
}

func TestCreateRecord_RecomputesStanding(t *testing.T) {
	f := newAttendanceFixture()
	svc := services.NewAttendanceService(f.attendanceRepo, f.eventRepo, f.memberRepo, f.standing)

	f.eventRepo.On("FindEventByID", mock.Anything, "e1").Return(&domain.Event{EventID: "e1"}, nil)
	f.memberRepo.On("FindMemberByID", mock.Anything, "m1").Return(&domain.Member{MemberID: "m1"}, nil)
	f.attendanceRepo.On("FindRecordByEventAndMember", mock.Anything, "e1", "m1").Return(nil, apperrors.ErrNotFound)
	f.attendanceRepo.On("SaveRecord", mock.Anything, mock.AnythingOfType("domain.AttendanceRecord")).Return(nil)
	f.standing.On("Recompute", mock.Anything, "m1").Return(nil)

	record, err := svc.CreateRecord(context.Background(), f.actor, dto.CreateAttendanceRequest{
		EventID:  "e1",
		MemberID: "m1",
		Outcome:  "alpha",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeAbsent, record.Outcome)
	f.standing.AssertExpectations(t)
}

func TestCreateRecord_DuplicatePairRejected(t *testing.T) {
	f := newAttendanceFixture()
	svc := services.NewAttendanceService(f.attendanceRepo, f.eventRepo, f.memberRepo, f.standing)

	f.eventRepo.On("FindEventByID", mock.Anything, "e1").Return(&domain.Event{EventID: "e1"}, nil)
	f.memberRepo.On("FindMemberByID", mock.Anything, "m1").Return(&domain.Member{MemberID: "m1"}, nil)
	existing := &domain.AttendanceRecord{RecordID: "r1", EventID: "e1", MemberID: "m1"}
	f.attendanceRepo.On("FindRecordByEventAndMember", mock.Anything, "e1", "m1").Return(existing, nil)

	_, err := svc.CreateRecord(context.Background(), f.actor, dto.CreateAttendanceRequest{
		EventID:  "e1",
		MemberID: "m1",
		Outcome:  "hadir",
	})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	f.attendanceRepo.AssertNotCalled(t, "SaveRecord", mock.Anything, mock.Anything)
	f.standing.AssertNotCalled(t, "Recompute", mock.Anything, mock.Anything)
}

func TestUpdateRecord_ReassignmentRecomputesBothMembers(t *testing.T) {
	f := newAttendanceFixture()
	svc := services.NewAttendanceService(f.attendanceRepo, f.eventRepo, f.memberRepo, f.standing)

	record := &domain.AttendanceRecord{RecordID: "r1", EventID: "e1", MemberID: "m1", Outcome: domain.OutcomeAbsent}
	f.attendanceRepo.On("FindRecordByID", mock.Anything, "r1").Return(record, nil)
	f.memberRepo.On("FindMemberByID", mock.Anything, "m2").Return(&domain.Member{MemberID: "m2"}, nil)
	f.attendanceRepo.On("FindRecordByEventAndMember", mock.Anything, "e1", "m2").Return(nil, apperrors.ErrNotFound)
	f.attendanceRepo.On("UpdateRecord", mock.Anything, mock.AnythingOfType("domain.AttendanceRecord")).Return(nil)
	f.standing.On("Recompute", mock.Anything, "m2").Return(nil)
	f.standing.On("Recompute", mock.Anything, "m1").Return(nil)

	newMember := "m2"
	updated, err := svc.UpdateRecord(context.Background(), f.actor, "r1", dto.UpdateAttendanceRequest{MemberID: &newMember})
	require.NoError(t, err)
	assert.Equal(t, "m2", updated.MemberID)

	f.standing.AssertCalled(t, "Recompute", mock.Anything, "m1")
	f.standing.AssertCalled(t, "Recompute", mock.Anything, "m2")
}

func TestDeleteRecord_RecomputesStanding(t *testing.T) {
	f := newAttendanceFixture()
	svc := services.NewAttendanceService(f.attendanceRepo, f.eventRepo, f.memberRepo, f.standing)

	record := &domain.AttendanceRecord{RecordID: "r1", EventID: "e1", MemberID: "m1"}
	f.attendanceRepo.On("FindRecordByID", mock.Anything, "r1").Return(record, nil)
	f.attendanceRepo.On("DeleteRecord", mock.Anything, "r1").Return(nil)
	f.standing.On("Recompute", mock.Anything, "m1").Return(nil)

	err := svc.DeleteRecord(context.Background(), f.actor, "r1")
	require.NoError(t, err)
	f.standing.AssertExpectations(t)
}

func TestCreateRecord_RequiresAttendanceCapability(t *testing.T) {
	f := newAttendanceFixture()
	svc := services.NewAttendanceService(f.attendanceRepo, f.eventRepo, f.memberRepo, f.standing)

	member := domain.Actor{UserID: "u9", Role: domain.RoleMember}
	_, err := svc.CreateRecord(context.Background(), member, dto.CreateAttendanceRequest{
		EventID:  "e1",
		MemberID: "m1",
		Outcome:  "hadir",
	})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}
