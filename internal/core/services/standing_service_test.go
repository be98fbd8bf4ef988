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
)

func TestStandingRecompute_Escalates(t *testing.T) {
	tests := []struct {
		name         string
		currentLevel int
		absences     int
		wantLevel    int
		wantNote     string
	}{
		{"below first threshold", 0, 3, 0, ""},
		{"first threshold", 0, 4, 1, "Level 1: Total 4x absent"},
		{"second threshold", 1, 7, 2, "Level 2: Total 7x absent"},
		{"third threshold", 2, 10, 3, "Level 3: Total 10x absent"},
		{"well past third", 0, 15, 3, "Level 3: Total 15x absent"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			memberRepo := new(MockMemberRepository)
			attendanceRepo := new(MockAttendanceRepository)
			svc := services.NewStandingService(memberRepo, attendanceRepo)

			member := &domain.Member{MemberID: "m1", SPLevel: tc.currentLevel}
			memberRepo.On("FindMemberByID", mock.Anything, "m1").Return(member, nil)
			attendanceRepo.On("CountAbsences", mock.Anything, "m1").Return(tc.absences, nil)
			memberRepo.On("UpdateMemberStanding", mock.Anything, "m1", tc.absences, tc.wantLevel, tc.wantNote).Return(nil)

			err := svc.Recompute(context.Background(), "m1")
			require.NoError(t, err)
			memberRepo.AssertExpectations(t)
		})
	}
}

func TestStandingRecompute_NeverDowngrades(t *testing.T) {
	memberRepo := new(MockMemberRepository)
	attendanceRepo := new(MockAttendanceRepository)
	svc := services.NewStandingService(memberRepo, attendanceRepo)

	// A level 2 member drops back to 6 absences; the level and note stay,
	// only the count is rewritten.
	member := &domain.Member{MemberID: "m1", SPLevel: 2, SPNote: "Level 2: Total 7x absent"}
	memberRepo.On("FindMemberByID", mock.Anything, "m1").Return(member, nil)
	attendanceRepo.On("CountAbsences", mock.Anything, "m1").Return(6, nil)
	memberRepo.On("UpdateMemberStanding", mock.Anything, "m1", 6, 2, "Level 2: Total 7x absent").Return(nil)

	err := svc.Recompute(context.Background(), "m1")
	require.NoError(t, err)
	memberRepo.AssertExpectations(t)
}

func TestStandingRecompute_Idempotent(t *testing.T) {
	memberRepo := new(MockMemberRepository)
	attendanceRepo := new(MockAttendanceRepository)
	svc := services.NewStandingService(memberRepo, attendanceRepo)

	// First pass escalates to level 2; the second pass sees the already
	// escalated member and must store the exact same count, level and note.
	before := &domain.Member{MemberID: "m1", SPLevel: 0}
	after := &domain.Member{MemberID: "m1", SPLevel: 2, SPNote: "Level 2: Total 8x absent"}
	memberRepo.On("FindMemberByID", mock.Anything, "m1").Return(before, nil).Once()
	memberRepo.On("FindMemberByID", mock.Anything, "m1").Return(after, nil).Once()
	attendanceRepo.On("CountAbsences", mock.Anything, "m1").Return(8, nil).Twice()
	memberRepo.On("UpdateMemberStanding", mock.Anything, "m1", 8, 2, "Level 2: Total 8x absent").Return(nil).Twice()

	require.NoError(t, svc.Recompute(context.Background(), "m1"))
	require.NoError(t, svc.Recompute(context.Background(), "m1"))
	memberRepo.AssertExpectations(t)
	attendanceRepo.AssertExpectations(t)
}

func TestStandingRecompute_AtTopLevelKeepsNote(t *testing.T) {
	memberRepo := new(MockMemberRepository)
	attendanceRepo := new(MockAttendanceRepository)
	svc := services.NewStandingService(memberRepo, attendanceRepo)

	// A member already at level 3 collects another absence: the note keeps
	// its original total while the stored count moves on.
	member := &domain.Member{MemberID: "m1", SPLevel: 3, SPNote: "Level 3: Total 10x absent"}
	memberRepo.On("FindMemberByID", mock.Anything, "m1").Return(member, nil)
	attendanceRepo.On("CountAbsences", mock.Anything, "m1").Return(11, nil)
	memberRepo.On("UpdateMemberStanding", mock.Anything, "m1", 11, 3, "Level 3: Total 10x absent").Return(nil)

	err := svc.Recompute(context.Background(), "m1")
	require.NoError(t, err)
	memberRepo.AssertExpectations(t)
}

func TestStandingRecompute_MissingMemberIsNoOp(t *testing.T) {
	memberRepo := new(MockMemberRepository)
	attendanceRepo := new(MockAttendanceRepository)
	svc := services.NewStandingService(memberRepo, attendanceRepo)

	memberRepo.On("FindMemberByID", mock.Anything, "gone").Return(nil, apperrors.ErrNotFound)

	err := svc.Recompute(context.Background(), "gone")
	assert.NoError(t, err)
	memberRepo.AssertNotCalled(t, "UpdateMemberStanding", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	attendanceRepo.AssertNotCalled(t, "CountAbsences", mock.Anything, mock.Anything)
}

func TestStandingForAbsences_SickAndExcusedCount(t *testing.T) {
	// Any non-present outcome counts toward the total, so four sick days
	// still reach level 1.
	level, note := domain.StandingForAbsences(4)
	assert.Equal(t, 1, level)
	assert.Equal(t, "Level 1: Total 4x absent", note)
}
