package services

// ServiceContainer holds instances of all the application services. It is the
// entry point the handlers resolve their dependencies from.
type ServiceContainer struct {
	User        UserSvcFacade
	Token       TokenSvcFacade
	Member      MemberSvcFacade
	Standing    StandingSvcFacade
	Event       EventSvcFacade
	Attendance  AttendanceSvcFacade
	Finance     FinanceSvcFacade
	Audit       AuditSvcFacade
	Reporting   ReportingSvcFacade
	Application ApplicationSvcFacade
	Agenda      AgendaSvcFacade
	Letter      LetterSvcFacade
}
