package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/himakom/orgadmin_backend/internal/core/domain"
)

// --- Mock MemberRepository ---

type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) SaveMember(ctx context.Context, member domain.Member) error {
	return m.Called(ctx, member).Error(0)
}

func (m *MockMemberRepository) FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	args := m.Called(ctx, memberID)
	var member *domain.Member
	if args.Get(0) != nil {
		member = args.Get(0).(*domain.Member)
	}
	return member, args.Error(1)
}

func (m *MockMemberRepository) FindMemberByAcademicID(ctx context.Context, academicID string) (*domain.Member, error) {
	args := m.Called(ctx, academicID)
	var member *domain.Member
	if args.Get(0) != nil {
		member = args.Get(0).(*domain.Member)
	}
	return member, args.Error(1)
}

func (m *MockMemberRepository) FindMembers(ctx context.Context, limit, offset int) ([]domain.Member, error) {
	args := m.Called(ctx, limit, offset)
	var members []domain.Member
	if args.Get(0) != nil {
		members = args.Get(0).([]domain.Member)
	}
	return members, args.Error(1)
}

func (m *MockMemberRepository) UpdateMember(ctx context.Context, member domain.Member) error {
	return m.Called(ctx, member).Error(0)
}

func (m *MockMemberRepository) UpdateMemberStanding(ctx context.Context, memberID string, absenceCount int, spLevel int, spNote string) error {
	return m.Called(ctx, memberID, absenceCount, spLevel, spNote).Error(0)
}

func (m *MockMemberRepository) MarkMemberDeleted(ctx context.Context, memberID string, deletedAt time.Time, deleterUserID string) error {
	return m.Called(ctx, memberID, deletedAt, deleterUserID).Error(0)
}

// --- Mock AttendanceRepository ---

type MockAttendanceRepository struct {
	mock.Mock
}

func (m *MockAttendanceRepository) SaveRecord(ctx context.Context, record domain.AttendanceRecord) error {
	return m.Called(ctx, record).Error(0)
}

func (m *MockAttendanceRepository) FindRecordByID(ctx context.Context, recordID string) (*domain.AttendanceRecord, error) {
	args := m.Called(ctx, recordID)
	var record *domain.AttendanceRecord
	if args.Get(0) != nil {
		record = args.Get(0).(*domain.AttendanceRecord)
	}
	return record, args.Error(1)
}

func (m *MockAttendanceRepository) FindRecordByEventAndMember(ctx context.Context, eventID, memberID string) (*domain.AttendanceRecord, error) {
	args := m.Called(ctx, eventID, memberID)
	var record *domain.AttendanceRecord
	if args.Get(0) != nil {
		record = args.Get(0).(*domain.AttendanceRecord)
	}
	return record, args.Error(1)
}

func (m *MockAttendanceRepository) FindRecordsByEvent(ctx context.Context, eventID string) ([]domain.AttendanceRecord, error) {
	args := m.Called(ctx, eventID)
	var records []domain.AttendanceRecord
	if args.Get(0) != nil {
		records = args.Get(0).([]domain.AttendanceRecord)
	}
	return records, args.Error(1)
}

func (m *MockAttendanceRepository) FindRecordsByMember(ctx context.Context, memberID string) ([]domain.AttendanceRecord, error) {
	args := m.Called(ctx, memberID)
	var records []domain.AttendanceRecord
	if args.Get(0) != nil {
		records = args.Get(0).([]domain.AttendanceRecord)
	}
	return records, args.Error(1)
}

func (m *MockAttendanceRepository) UpdateRecord(ctx context.Context, record domain.AttendanceRecord) error {
	return m.Called(ctx, record).Error(0)
}

func (m *MockAttendanceRepository) DeleteRecord(ctx context.Context, recordID string) error {
	return m.Called(ctx, recordID).Error(0)
}

func (m *MockAttendanceRepository) CountAbsences(ctx context.Context, memberID string) (int, error) {
	args := m.Called(ctx, memberID)
	return args.Int(0), args.Error(1)
}

// --- Mock EventRepository ---

type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) SaveEvent(ctx context.Context, event domain.Event) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockEventRepository) FindEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	args := m.Called(ctx, eventID)
	var event *domain.Event
	if args.Get(0) != nil {
		event = args.Get(0).(*domain.Event)
	}
	return event, args.Error(1)
}

func (m *MockEventRepository) FindEvents(ctx context.Context, limit, offset int) ([]domain.Event, error) {
	args := m.Called(ctx, limit, offset)
	var events []domain.Event
	if args.Get(0) != nil {
		events = args.Get(0).([]domain.Event)
	}
	return events, args.Error(1)
}

func (m *MockEventRepository) UpdateEvent(ctx context.Context, event domain.Event) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockEventRepository) DeleteEvent(ctx context.Context, eventID string) error {
	return m.Called(ctx, eventID).Error(0)
}

// --- Mock ApplicationRepository ---

type MockApplicationRepository struct {
	mock.Mock
}

func (m *MockApplicationRepository) SaveApplication(ctx context.Context, app domain.MembershipApplication) error {
	return m.Called(ctx, app).Error(0)
}

func (m *MockApplicationRepository) FindApplicationByID(ctx context.Context, applicationID string) (*domain.MembershipApplication, error) {
	args := m.Called(ctx, applicationID)
	var app *domain.MembershipApplication
	if args.Get(0) != nil {
		app = args.Get(0).(*domain.MembershipApplication)
	}
	return app, args.Error(1)
}

func (m *MockApplicationRepository) FindApplications(ctx context.Context, status domain.ApplicationStatus, limit, offset int) ([]domain.MembershipApplication, error) {
	args := m.Called(ctx, status, limit, offset)
	var apps []domain.MembershipApplication
	if args.Get(0) != nil {
		apps = args.Get(0).([]domain.MembershipApplication)
	}
	return apps, args.Error(1)
}

func (m *MockApplicationRepository) ApproveApplication(ctx context.Context, applicationID string, member domain.Member, reviewerUserID string, reviewedAt time.Time) error {
	return m.Called(ctx, applicationID, member, reviewerUserID, reviewedAt).Error(0)
}

func (m *MockApplicationRepository) RejectApplication(ctx context.Context, applicationID string, note string, reviewerUserID string, reviewedAt time.Time) error {
	return m.Called(ctx, applicationID, note, reviewerUserID, reviewedAt).Error(0)
}

// --- Mock ReportingRepository ---

type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetSummary(ctx context.Context) (*domain.FinanceSummary, error) {
	args := m.Called(ctx)
	var summary *domain.FinanceSummary
	if args.Get(0) != nil {
		summary = args.Get(0).(*domain.FinanceSummary)
	}
	return summary, args.Error(1)
}

func (m *MockReportingRepository) GetMonthlyTotals(ctx context.Context, year int) ([]domain.MonthlyBucket, error) {
	args := m.Called(ctx, year)
	var buckets []domain.MonthlyBucket
	if args.Get(0) != nil {
		buckets = args.Get(0).([]domain.MonthlyBucket)
	}
	return buckets, args.Error(1)
}

func (m *MockReportingRepository) GetCategoryTotals(ctx context.Context, year, month int) ([]domain.CategoryTotal, error) {
	args := m.Called(ctx, year, month)
	var totals []domain.CategoryTotal
	if args.Get(0) != nil {
		totals = args.Get(0).([]domain.CategoryTotal)
	}
	return totals, args.Error(1)
}

func (m *MockReportingRepository) GetRecentTransactions(ctx context.Context, limit int) ([]domain.RecentTransaction, error) {
	args := m.Called(ctx, limit)
	var txns []domain.RecentTransaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.RecentTransaction)
	}
	return txns, args.Error(1)
}

// --- Mock FinanceRepository ---

type MockFinanceRepository struct {
	mock.Mock
}

func (m *MockFinanceRepository) SaveTransaction(ctx context.Context, txn domain.FinancialTransaction) error {
	return m.Called(ctx, txn).Error(0)
}

func (m *MockFinanceRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.FinancialTransaction, error) {
	args := m.Called(ctx, transactionID)
	var txn *domain.FinancialTransaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.FinancialTransaction)
	}
	return txn, args.Error(1)
}

func (m *MockFinanceRepository) FindTransactions(ctx context.Context, limit, offset int) ([]domain.FinancialTransaction, error) {
	args := m.Called(ctx, limit, offset)
	var txns []domain.FinancialTransaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.FinancialTransaction)
	}
	return txns, args.Error(1)
}

func (m *MockFinanceRepository) FindTransactionsByYear(ctx context.Context, year int) ([]domain.FinancialTransaction, error) {
	args := m.Called(ctx, year)
	var txns []domain.FinancialTransaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.FinancialTransaction)
	}
	return txns, args.Error(1)
}

func (m *MockFinanceRepository) UpdateTransaction(ctx context.Context, txn domain.FinancialTransaction) error {
	return m.Called(ctx, txn).Error(0)
}

func (m *MockFinanceRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	return m.Called(ctx, transactionID).Error(0)
}

// --- Mock StandingSvcFacade ---

type MockStandingService struct {
	mock.Mock
}

func (m *MockStandingService) Recompute(ctx context.Context, memberID string) error {
	return m.Called(ctx, memberID).Error(0)
}
