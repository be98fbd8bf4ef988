package services_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/himakom/orgadmin_backend/internal/apperrors"
	"github.com/himakom/orgadmin_backend/internal/core/domain"
	"github.com/himakom/orgadmin_backend/internal/core/services"
	"github.com/himakom/orgadmin_backend/internal/dto"
)

type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) Store(namespace, filename string, content io.Reader) (string, error) {
	args := m.Called(namespace, filename, content)
	return args.String(0), args.Error(1)
}

func (m *MockFileStore) Delete(path string) error {
	return m.Called(path).Error(0)
}

func (m *MockFileStore) Resolve(path string) string {
	return m.Called(path).String(0)
}

func TestCreateTransaction_PersistsLedgerEntry(t *testing.T) {
	financeRepo := new(MockFinanceRepository)
	fileStore := new(MockFileStore)
	svc := services.NewFinanceService(financeRepo, fileStore)
	actor := domain.Actor{UserID: "u1", Role: domain.RoleTreasurer1}

	financeRepo.On("SaveTransaction", mock.Anything, mock.MatchedBy(func(txn domain.FinancialTransaction) bool {
		return txn.Direction == domain.DirectionIn &&
			txn.Amount.Equal(decimal.NewFromInt(100000)) &&
			txn.TransactionDate.Format("2006-01-02") == "2024-03-05"
	})).Return(nil)

	txn, err := svc.CreateTransaction(context.Background(), actor, dto.CreateTransactionRequest{
		Direction:       "masuk",
		Category:        "dues",
		Amount:          decimal.NewFromInt(100000),
		TransactionDate: "2024-03-05",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, txn.TransactionID)
	financeRepo.AssertExpectations(t)
}

func TestCreateTransaction_RejectsNegativeAmount(t *testing.T) {
	financeRepo := new(MockFinanceRepository)
	fileStore := new(MockFileStore)
	svc := services.NewFinanceService(financeRepo, fileStore)
	actor := domain.Actor{UserID: "u1", Role: domain.RoleTreasurer1}

	_, err := svc.CreateTransaction(context.Background(), actor, dto.CreateTransactionRequest{
		Direction:       "keluar",
		Category:        "supplies",
		Amount:          decimal.NewFromInt(-5000),
		TransactionDate: "2024-03-05",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	financeRepo.AssertNotCalled(t, "SaveTransaction", mock.Anything, mock.Anything)
}

func TestCreateTransaction_RejectsBadDate(t *testing.T) {
	financeRepo := new(MockFinanceRepository)
	fileStore := new(MockFileStore)
	svc := services.NewFinanceService(financeRepo, fileStore)
	actor := domain.Actor{UserID: "u1", Role: domain.RoleTreasurer1}

	_, err := svc.CreateTransaction(context.Background(), actor, dto.CreateTransactionRequest{
		Direction:       "masuk",
		Category:        "dues",
		Amount:          decimal.NewFromInt(1000),
		TransactionDate: "05-03-2024",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestAttachEvidence_ReplacesPreviousFile(t *testing.T) {
	financeRepo := new(MockFinanceRepository)
	fileStore := new(MockFileStore)
	svc := services.NewFinanceService(financeRepo, fileStore)
	actor := domain.Actor{UserID: "u1", Role: domain.RoleTreasurer1}

	existing := &domain.FinancialTransaction{
		TransactionID: "t1",
		EvidencePath:  "finance-evidence/old.pdf",
	}
	financeRepo.On("FindTransactionByID", mock.Anything, "t1").Return(existing, nil)
	fileStore.On("Store", "finance-evidence", "receipt.pdf", mock.Anything).Return("finance-evidence/new.pdf", nil)
	financeRepo.On("UpdateTransaction", mock.Anything, mock.MatchedBy(func(txn domain.FinancialTransaction) bool {
		return txn.EvidencePath == "finance-evidence/new.pdf"
	})).Return(nil)
	fileStore.On("Delete", "finance-evidence/old.pdf").Return(nil)

	txn, err := svc.AttachEvidence(context.Background(), actor, "t1", "receipt.pdf", strings.NewReader("pdf"))
	require.NoError(t, err)
	assert.Equal(t, "finance-evidence/new.pdf", txn.EvidencePath)
	fileStore.AssertExpectations(t)
}

func TestDeleteTransaction_RemovesEvidenceFile(t *testing.T) {
	financeRepo := new(MockFinanceRepository)
	fileStore := new(MockFileStore)
	svc := services.NewFinanceService(financeRepo, fileStore)
	actor := domain.Actor{UserID: "u1", Role: domain.RoleTreasurer1}

	existing := &domain.FinancialTransaction{
		TransactionID: "t1",
		EvidencePath:  "finance-evidence/receipt.pdf",
	}
	financeRepo.On("FindTransactionByID", mock.Anything, "t1").Return(existing, nil)
	financeRepo.On("DeleteTransaction", mock.Anything, "t1").Return(nil)
	fileStore.On("Delete", "finance-evidence/receipt.pdf").Return(nil)

	err := svc.DeleteTransaction(context.Background(), actor, "t1")
	require.NoError(t, err)
	fileStore.AssertExpectations(t)
}

func TestFinanceWrites_RequireFinanceCapability(t *testing.T) {
	financeRepo := new(MockFinanceRepository)
	fileStore := new(MockFileStore)
	svc := services.NewFinanceService(financeRepo, fileStore)

	// Secretaries can read reports but never touch the ledger.
	secretary := domain.Actor{UserID: "u3", Role: domain.RoleSecretary1}
	_, err := svc.CreateTransaction(context.Background(), secretary, dto.CreateTransactionRequest{
		Direction:       "masuk",
		Category:        "dues",
		Amount:          decimal.NewFromInt(1000),
		TransactionDate: "2024-03-05",
	})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	err = svc.DeleteTransaction(context.Background(), secretary, "t1")
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}
