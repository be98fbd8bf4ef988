package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/himakom/orgadmin_backend/internal/core/domain"
	portsrepo "github.com/himakom/orgadmin_backend/internal/core/ports/repositories"
	portssvc "github.com/himakom/orgadmin_backend/internal/core/ports/services"
	"github.com/himakom/orgadmin_backend/internal/dto"
)

type auditService struct {
	BaseService
	auditRepo   portsrepo.AuditRepository
	financeRepo portsrepo.FinanceRepository
}

// NewAuditService creates the financial review service. Audits reference
// transactions but never mutate them.
func NewAuditService(auditRepo portsrepo.AuditRepository, financeRepo portsrepo.FinanceRepository) portssvc.AuditSvcFacade {
	return &auditService{auditRepo: auditRepo, financeRepo: financeRepo}
}

var _ portssvc.AuditSvcFacade = (*auditService)(nil)

func (s *auditService) CreateAudit(ctx context.Context, actor domain.Actor, req dto.CreateAuditRequest) (*domain.FinancialAudit, error) {
	if err := s.Authorize(ctx, actor, domain.CapAuditFinance); err != nil {
		return nil, err
	}

	if _, err := s.financeRepo.FindTransactionByID(ctx, req.TransactionID); err != nil {
		return nil, fmt.Errorf("transaction lookup failed: %w", err)
	}
	reviewDate, err := time.Parse(dateLayout, req.ReviewDate)
	if err != nil {
		return nil, fmt.Errorf("invalid review date: %w", err)
	}

	now := time.Now()
	audit := domain.FinancialAudit{
		AuditID:       uuid.NewString(),
		TransactionID: req.TransactionID,
		AuditorUserID: actor.UserID,
		ReviewDate:    reviewDate,
		Outcome:       domain.AuditOutcome(req.Outcome),
		Note:          req.Note,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.auditRepo.SaveAudit(ctx, audit); err != nil {
		return nil, fmt.Errorf("failed to save audit: %w", err)
	}

	s.LogInfo(ctx, "Audit recorded",
		slog.String("audit_id", audit.AuditID),
		slog.String("transaction_id", audit.TransactionID),
		slog.String("outcome", string(audit.Outcome)))
	return &audit, nil
}

func (s *auditService) GetAuditByID(ctx context.Context, actor domain.Actor, auditID string) (*domain.FinancialAudit, error) {
	if err := s.Authorize(ctx, actor, domain.CapViewReports); err != nil {
		return nil, err
	}
	audit, err := s.auditRepo.FindAuditByID(ctx, auditID)
	if err != nil {
		return nil, fmt.Errorf("failed to get audit %s: %w", auditID, err)
	}
	return audit, nil
}

func (s *auditService) ListAuditsByTransaction(ctx context.Context, actor domain.Actor, transactionID string) ([]domain.FinancialAudit, error) {
	if err := s.Authorize(ctx, actor, domain.CapViewReports); err != nil {
		return nil, err
	}
	audits, err := s.auditRepo.FindAuditsByTransaction(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list audits for transaction %s: %w", transactionID, err)
	}
	return audits, nil
}

func (s *auditService) ListAudits(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.FinancialAudit, error) {
	if err := s.Authorize(ctx, actor, domain.CapViewReports); err != nil {
		return nil, err
	}
	audits, err := s.auditRepo.FindAudits(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list audits: %w", err)
	}
	return audits, nil
}

func (s *auditService) UpdateAudit(ctx context.Context, actor domain.Actor, auditID string, req dto.UpdateAuditRequest) (*domain.FinancialAudit, error) {
	if err := s.Authorize(ctx, actor, domain.CapAuditFinance); err != nil {
		return nil, err
	}

	audit, err := s.auditRepo.FindAuditByID(ctx, auditID)
	if err != nil {
		return nil, fmt.Errorf("failed to load audit %s for update: %w", auditID, err)
	}

	if req.ReviewDate != nil {
		reviewDate, err := time.Parse(dateLayout, *req.ReviewDate)
		if err != nil {
			return nil, fmt.Errorf("invalid review date: %w", err)
		}
		audit.ReviewDate = reviewDate
	}
	if req.Outcome != nil {
		audit.Outcome = domain.AuditOutcome(*req.Outcome)
	}
	if req.Note != nil {
		audit.Note = *req.Note
	}
	audit.LastUpdatedAt = time.Now()
	audit.LastUpdatedBy = actor.UserID

	if err := s.auditRepo.UpdateAudit(ctx, *audit); err != nil {
		return nil, fmt.Errorf("failed to update audit %s: %w", auditID, err)
	}
	return audit, nil
}

func (s *auditService) DeleteAudit(ctx context.Context, actor domain.Actor, auditID string) error {
	if err := s.Authorize(ctx, actor, domain.CapAuditFinance); err != nil {
		return err
	}
	if err := s.auditRepo.DeleteAudit(ctx, auditID); err != nil {
		return fmt.Errorf("failed to delete audit %s: %w", auditID, err)
	}
	s.LogInfo(ctx, "Audit deleted", slog.String("audit_id", auditID))
	return nil
}
