package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAgendaStatusTransitions(t *testing.T) {
	tests := []struct {
		from    AgendaStatus
		to      AgendaStatus
		allowed bool
	}{
		{AgendaDraft, AgendaPublished, true},
		{AgendaDraft, AgendaCancelled, true},
		{AgendaDraft, AgendaCompleted, false},
		{AgendaPublished, AgendaCompleted, true},
		{AgendaPublished, AgendaCancelled, true},
		{AgendaPublished, AgendaDraft, false},
		{AgendaCompleted, AgendaCancelled, false},
		{AgendaCompleted, AgendaPublished, false},
		{AgendaCancelled, AgendaPublished, false},
		{AgendaCancelled, AgendaDraft, false},
	}

	for _, tc := range tests {
		got := tc.from.CanTransitionTo(tc.to)
		assert.Equal(t, tc.allowed, got, "%s -> %s", tc.from, tc.to)
	}
}
