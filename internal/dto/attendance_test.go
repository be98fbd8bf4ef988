package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/himakom/orgadmin_backend/internal/core/domain"
	"github.com/himakom/orgadmin_backend/internal/dto"
)

func TestToAttendanceResponse_CountsAsAbsence(t *testing.T) {
	tests := []struct {
		outcome domain.AttendanceOutcome
		want    bool
	}{
		{domain.OutcomePresent, false},
		{domain.OutcomeAbsent, true},
		{domain.OutcomeExcused, true},
		{domain.OutcomeSick, true},
	}

	for _, tc := range tests {
		t.Run(string(tc.outcome), func(t *testing.T) {
			resp := dto.ToAttendanceResponse(&domain.AttendanceRecord{
				RecordID: "r1",
				Outcome:  tc.outcome,
			})
			assert.Equal(t, string(tc.outcome), resp.Outcome)
			assert.Equal(t, tc.want, resp.CountsAsAbsence)
		})
	}
}
