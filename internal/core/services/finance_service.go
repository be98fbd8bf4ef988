package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/himakom/orgadmin_backend/internal/apperrors"
	"github.com/himakom/orgadmin_backend/internal/core/domain"
	portsrepo "github.com/himakom/orgadmin_backend/internal/core/ports/repositories"
	portssvc "github.com/himakom/orgadmin_backend/internal/core/ports/services"
	"github.com/himakom/orgadmin_backend/internal/dto"
)

const evidenceNamespace = "finance-evidence"

const dateLayout = "2006-01-02"

type financeService struct {
	BaseService
	financeRepo portsrepo.FinanceRepository
	fileStore   portssvc.FileStore
}

// NewFinanceService creates the ledger transaction service.
func NewFinanceService(financeRepo portsrepo.FinanceRepository, fileStore portssvc.FileStore) portssvc.FinanceSvcFacade {
	return &financeService{financeRepo: financeRepo, fileStore: fileStore}
}

var _ portssvc.FinanceSvcFacade = (*financeService)(nil)

func (s *financeService) CreateTransaction(ctx context.Context, actor domain.Actor, req dto.CreateTransactionRequest) (*domain.FinancialTransaction, error) {
	if err := s.Authorize(ctx, actor, domain.CapManageFinance); err != nil {
		return nil, err
	}

	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("amount must not be negative: %w", apperrors.ErrValidation)
	}
	txnDate, err := time.Parse(dateLayout, req.TransactionDate)
	if err != nil {
		return nil, fmt.Errorf("invalid transaction date: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	txn := domain.FinancialTransaction{
		TransactionID:   uuid.NewString(),
		Direction:       domain.TransactionDirection(req.Direction),
		Category:        req.Category,
		Amount:          req.Amount,
		TransactionDate: txnDate,
		Description:     req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.financeRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("direction", string(txn.Direction)),
		slog.String("amount", txn.Amount.String()))
	return &txn, nil
}

func (s *financeService) GetTransactionByID(ctx context.Context, actor domain.Actor, transactionID string) (*domain.FinancialTransaction, error) {
	if err := s.Authorize(ctx, actor, domain.CapViewReports); err != nil {
		return nil, err
	}
	txn, err := s.financeRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

func (s *financeService) ListTransactions(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.FinancialTransaction, error) {
	if err := s.Authorize(ctx, actor, domain.CapViewReports); err != nil {
		return nil, err
	}
	txns, err := s.financeRepo.FindTransactions(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

func (s *financeService) UpdateTransaction(ctx context.Context, actor domain.Actor, transactionID string, req dto.UpdateTransactionRequest) (*domain.FinancialTransaction, error) {
	if err := s.Authorize(ctx, actor, domain.CapManageFinance); err != nil {
		return nil, err
	}

	txn, err := s.financeRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction %s for update: %w", transactionID, err)
	}

	if req.Direction != nil {
		txn.Direction = domain.TransactionDirection(*req.Direction)
	}
	if req.Category != nil {
		txn.Category = *req.Category
	}
	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return nil, fmt.Errorf("amount must not be negative: %w", apperrors.ErrValidation)
		}
		txn.Amount = *req.Amount
	}
	if req.TransactionDate != nil {
		txnDate, err := time.Parse(dateLayout, *req.TransactionDate)
		if err != nil {
			return nil, fmt.Errorf("invalid transaction date: %w", apperrors.ErrValidation)
		}
		txn.TransactionDate = txnDate
	}
	if req.Description != nil {
		txn.Description = *req.Description
	}
	txn.LastUpdatedAt = time.Now()
	txn.LastUpdatedBy = actor.UserID

	if err := s.financeRepo.UpdateTransaction(ctx, *txn); err != nil {
		return nil, fmt.Errorf("failed to update transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

func (s *financeService) DeleteTransaction(ctx context.Context, actor domain.Actor, transactionID string) error {
	if err := s.Authorize(ctx, actor, domain.CapManageFinance); err != nil {
		return err
	}

	txn, err := s.financeRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return fmt.Errorf("failed to load transaction %s for delete: %w", transactionID, err)
	}

	if err := s.financeRepo.DeleteTransaction(ctx, transactionID); err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}

	if txn.EvidencePath != "" {
		if err := s.fileStore.Delete(txn.EvidencePath); err != nil {
			s.LogWarn(ctx, "Failed to remove evidence file after delete",
				slog.String("transaction_id", transactionID), slog.String("path", txn.EvidencePath), slog.String("error", err.Error()))
		}
	}

	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

func (s *financeService) AttachEvidence(ctx context.Context, actor domain.Actor, transactionID string, filename string, content io.Reader) (*domain.FinancialTransaction, error) {
	if err := s.Authorize(ctx, actor, domain.CapManageFinance); err != nil {
		return nil, err
	}

	txn, err := s.financeRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction %s for evidence: %w", transactionID, err)
	}

	// Same sequencing as member photos: new file, row update, then cleanup.
	newPath, err := s.fileStore.Store(evidenceNamespace, filename, content)
	if err != nil {
		return nil, fmt.Errorf("failed to store evidence file: %w", err)
	}

	oldPath := txn.EvidencePath
	txn.EvidencePath = newPath
	txn.LastUpdatedAt = time.Now()
	txn.LastUpdatedBy = actor.UserID

	if err := s.financeRepo.UpdateTransaction(ctx, *txn); err != nil {
		return nil, fmt.Errorf("failed to update evidence path: %w", err)
	}

	if oldPath != "" {
		if err := s.fileStore.Delete(oldPath); err != nil {
			s.LogWarn(ctx, "Failed to remove previous evidence file",
				slog.String("transaction_id", transactionID), slog.String("path", oldPath), slog.String("error", err.Error()))
		}
	}

	return txn, nil
}
