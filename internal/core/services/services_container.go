package services

import (
	portsrepo "github.com/himakom/orgadmin_backend/internal/core/ports/repositories"
	portssvc "github.com/himakom/orgadmin_backend/internal/core/ports/services"
	"github.com/himakom/orgadmin_backend/internal/platform/config"
)

// NewServiceContainer wires every service against the repository provider
// and shared infrastructure.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider, fileStore portssvc.FileStore) *portssvc.ServiceContainer {
	standing := NewStandingService(repos.MemberRepo, repos.AttendanceRepo)

	return &portssvc.ServiceContainer{
		User:        NewUserService(repos.UserRepo),
		Token:       NewTokenService(cfg, repos.UserRepo),
		Member:      NewMemberService(repos.MemberRepo, fileStore),
		Standing:    standing,
		Event:       NewEventService(repos.EventRepo),
		Attendance:  NewAttendanceService(repos.AttendanceRepo, repos.EventRepo, repos.MemberRepo, standing),
		Finance:     NewFinanceService(repos.FinanceRepo, fileStore),
		Audit:       NewAuditService(repos.AuditRepo, repos.FinanceRepo),
		Reporting:   NewReportingService(repos.ReportingRepo, repos.FinanceRepo),
		Application: NewApplicationService(repos.ApplicationRepo, repos.MemberRepo),
		Agenda:      NewAgendaService(repos.AgendaRepo),
		Letter:      NewLetterService(repos.LetterRepo, fileStore),
	}
}
