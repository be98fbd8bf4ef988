package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/himakom/orgadmin_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider builds the full repository set against one pgx pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		UserRepo:        newPgxUserRepository(pool),
		MemberRepo:      newPgxMemberRepository(pool),
		EventRepo:       newPgxEventRepository(pool),
		AttendanceRepo:  newPgxAttendanceRepository(pool),
		FinanceRepo:     newPgxFinanceRepository(pool),
		AuditRepo:       newPgxAuditRepository(pool),
		ApplicationRepo: newPgxApplicationRepository(pool),
		AgendaRepo:      newPgxAgendaRepository(pool),
		LetterRepo:      newPgxLetterRepository(pool),
		ReportingRepo:   newPgxReportingRepository(pool),
	}
}
