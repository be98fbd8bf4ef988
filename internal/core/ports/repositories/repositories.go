package repositories

// RepositoryProvider aggregates every repository implementation so wiring the
// service container needs a single value.
type RepositoryProvider struct {
	UserRepo        UserRepository
	MemberRepo      MemberRepository
	EventRepo       EventRepository
	AttendanceRepo  AttendanceRepository
	FinanceRepo     FinanceRepository
	AuditRepo       AuditRepository
	ApplicationRepo ApplicationRepository
	AgendaRepo      AgendaRepository
	LetterRepo      LetterRepository
	ReportingRepo   ReportingRepository
}
