package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleCapabilities(t *testing.T) {
	tests := []struct {
		role Role
		cap  Capability
		want bool
	}{
		{RoleAdmin, CapManageUsers, true},
		{RoleAdmin, CapAuditFinance, true},
		{RoleChair, CapManageUsers, false},
		{RoleChair, CapReviewApplications, true},
		{RoleSecretary1, CapManageLetters, true},
		{RoleSecretary1, CapManageFinance, false},
		{RoleSecretary2, CapManageAgenda, true},
		{RoleTreasurer1, CapManageFinance, true},
		{RoleTreasurer1, CapAuditFinance, false},
		{RoleTreasurer2, CapManageMembers, false},
		{RoleMember, CapViewReports, true},
		{RoleMember, CapManageAttendance, false},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.role.Can(tc.cap), "%s / %s", tc.role, tc.cap)
	}
}

func TestRoleIsValid(t *testing.T) {
	assert.True(t, RoleAdmin.IsValid())
	assert.True(t, RoleMember.IsValid())
	assert.False(t, Role("GHOST").IsValid())
	assert.False(t, Role("").IsValid())
}

func TestUnknownRoleHasNoCapabilities(t *testing.T) {
	ghost := Role("GHOST")
	for _, cap := range []Capability{
		CapManageMembers, CapManageAttendance, CapManageFinance, CapAuditFinance,
		CapManageLetters, CapManageAgenda, CapReviewApplications, CapManageUsers, CapViewReports,
	} {
		assert.False(t, ghost.Can(cap), "%s", cap)
	}
}
