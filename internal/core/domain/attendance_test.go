package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttendanceOutcomeCountsAsAbsence(t *testing.T) {
	assert.False(t, OutcomePresent.CountsAsAbsence())
	assert.True(t, OutcomeAbsent.CountsAsAbsence())
	assert.True(t, OutcomeExcused.CountsAsAbsence())
	assert.True(t, OutcomeSick.CountsAsAbsence())
}

func TestAttendanceOutcomeIsValid(t *testing.T) {
	assert.True(t, OutcomePresent.IsValid())
	assert.True(t, OutcomeSick.IsValid())
	assert.False(t, AttendanceOutcome("late").IsValid())
}

func TestStandingForAbsences(t *testing.T) {
	tests := []struct {
		absences  int
		wantLevel int
	}{
		{0, 0},
		{3, 0},
		{4, 1},
		{6, 1},
		{7, 2},
		{9, 2},
		{10, 3},
		{25, 3},
	}

	for _, tc := range tests {
		level, note := StandingForAbsences(tc.absences)
		assert.Equal(t, tc.wantLevel, level, "absences=%d", tc.absences)
		if tc.wantLevel == 0 {
			assert.Empty(t, note)
		} else {
			assert.Contains(t, note, "absent")
		}
	}
}
