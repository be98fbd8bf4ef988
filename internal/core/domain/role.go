package domain

// Role is the closed set of positions a user account can hold in the
// association. Authorization derives from the capability table below, never
// from comparisons between roles.
type Role string

const (
	RoleAdmin            Role = "ADMIN"
	RoleChair            Role = "CHAIR"
	RoleViceChair        Role = "VICE_CHAIR"
	RoleSecretaryGeneral Role = "SECRETARY_GENERAL"
	RoleSecretary1       Role = "SECRETARY_1"
	RoleSecretary2       Role = "SECRETARY_2"
	RoleTreasurer1       Role = "TREASURER_1"
	RoleTreasurer2       Role = "TREASURER_2"
	RoleMember           Role = "MEMBER"
)

// Capability names one action category a role may be allowed to perform.
type Capability string

const (
	CapManageMembers      Capability = "manage_members"
	CapManageAttendance   Capability = "manage_attendance"
	CapManageFinance      Capability = "manage_finance"
	CapAuditFinance       Capability = "audit_finance"
	CapManageLetters      Capability = "manage_letters"
	CapManageAgenda       Capability = "manage_agenda"
	CapReviewApplications Capability = "review_applications"
	CapManageUsers        Capability = "manage_users"
	CapViewReports        Capability = "view_reports"
)

// roleCapabilities is the authorization table. Admin and the core leadership
// (chair, vice-chair, secretary-general) carry the broad set; treasurers carry
// finance; secretaries carry letters and agenda; plain members only read.
var roleCapabilities = map[Role]map[Capability]bool{
	RoleAdmin: {
		CapManageMembers: true, CapManageAttendance: true, CapManageFinance: true,
		CapAuditFinance: true, CapManageLetters: true, CapManageAgenda: true,
		CapReviewApplications: true, CapManageUsers: true, CapViewReports: true,
	},
	RoleChair: {
		CapManageMembers: true, CapManageAttendance: true, CapManageFinance: true,
		CapAuditFinance: true, CapManageLetters: true, CapManageAgenda: true,
		CapReviewApplications: true, CapViewReports: true,
	},
	RoleViceChair: {
		CapManageMembers: true, CapManageAttendance: true, CapManageFinance: true,
		CapAuditFinance: true, CapManageLetters: true, CapManageAgenda: true,
		CapReviewApplications: true, CapViewReports: true,
	},
	RoleSecretaryGeneral: {
		CapManageMembers: true, CapManageAttendance: true, CapManageFinance: true,
		CapAuditFinance: true, CapManageLetters: true, CapManageAgenda: true,
		CapReviewApplications: true, CapViewReports: true,
	},
	RoleSecretary1: {
		CapManageAttendance: true, CapManageLetters: true, CapManageAgenda: true,
		CapViewReports: true,
	},
	RoleSecretary2: {
		CapManageAttendance: true, CapManageLetters: true, CapManageAgenda: true,
		CapViewReports: true,
	},
	RoleTreasurer1: {
		CapManageFinance: true, CapViewReports: true,
	},
	RoleTreasurer2: {
		CapManageFinance: true, CapViewReports: true,
	},
	RoleMember: {
		CapViewReports: true,
	},
}

// Can reports whether the role holds the capability. Unknown roles hold none.
func (r Role) Can(cap Capability) bool {
	return roleCapabilities[r][cap]
}

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	_, ok := roleCapabilities[r]
	return ok
}
