package services

import (
	"context"
	"errors"
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

const letterNamespace = "letters"

type letterService struct {
	BaseService
	letterRepo portsrepo.LetterRepository
	fileStore  portssvc.FileStore
}

// NewLetterService creates the correspondence register service.
func NewLetterService(letterRepo portsrepo.LetterRepository, fileStore portssvc.FileStore) portssvc.LetterSvcFacade {
	return &letterService{letterRepo: letterRepo, fileStore: fileStore}
}

var _ portssvc.LetterSvcFacade = (*letterService)(nil)

func (s *letterService) CreateLetter(ctx context.Context, actor domain.Actor, req dto.CreateLetterRequest) (*domain.Letter, error) {
	if err := s.Authorize(ctx, actor, domain.CapManageLetters); err != nil {
		return nil, err
	}

	existing, err := s.letterRepo.FindLetterByReference(ctx, req.ReferenceNumber)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check reference number: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("reference number %q already registered: %w", req.ReferenceNumber, apperrors.ErrDuplicate)
	}

	letterDate, err := time.Parse(dateLayout, req.LetterDate)
	if err != nil {
		return nil, fmt.Errorf("invalid letter date: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	letter := domain.Letter{
		LetterID:        uuid.NewString(),
		Direction:       domain.LetterDirection(req.Direction),
		ReferenceNumber: req.ReferenceNumber,
		Counterparty:    req.Counterparty,
		LetterDate:      letterDate,
		Subject:         req.Subject,
		Summary:         req.Summary,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.letterRepo.SaveLetter(ctx, letter); err != nil {
		return nil, fmt.Errorf("failed to save letter: %w", err)
	}

	s.LogInfo(ctx, "Letter registered",
		slog.String("letter_id", letter.LetterID),
		slog.String("reference", letter.ReferenceNumber),
		slog.String("direction", string(letter.Direction)))
	return &letter, nil
}

func (s *letterService) GetLetterByID(ctx context.Context, actor domain.Actor, letterID string) (*domain.Letter, error) {
	if err := s.Authorize(ctx, actor, domain.CapViewReports); err != nil {
		return nil, err
	}
	letter, err := s.letterRepo.FindLetterByID(ctx, letterID)
	if err != nil {
		return nil, fmt.Errorf("failed to get letter %s: %w", letterID, err)
	}
	return letter, nil
}

func (s *letterService) ListLetters(ctx context.Context, actor domain.Actor, direction domain.LetterDirection, limit, offset int) ([]domain.Letter, error) {
	if err := s.Authorize(ctx, actor, domain.CapViewReports); err != nil {
		return nil, err
	}
	letters, err := s.letterRepo.FindLetters(ctx, direction, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list letters: %w", err)
	}
	return letters, nil
}

func (s *letterService) UpdateLetter(ctx context.Context, actor domain.Actor, letterID string, req dto.UpdateLetterRequest) (*domain.Letter, error) {
	if err := s.Authorize(ctx, actor, domain.CapManageLetters); err != nil {
		return nil, err
	}

	letter, err := s.letterRepo.FindLetterByID(ctx, letterID)
	if err != nil {
		return nil, fmt.Errorf("failed to load letter %s for update: %w", letterID, err)
	}

	if req.Counterparty != nil {
		letter.Counterparty = *req.Counterparty
	}
	if req.LetterDate != nil {
		letterDate, err := time.Parse(dateLayout, *req.LetterDate)
		if err != nil {
			return nil, fmt.Errorf("invalid letter date: %w", apperrors.ErrValidation)
		}
		letter.LetterDate = letterDate
	}
	if req.Subject != nil {
		letter.Subject = *req.Subject
	}
	if req.Summary != nil {
		letter.Summary = *req.Summary
	}
	letter.LastUpdatedAt = time.Now()
	letter.LastUpdatedBy = actor.UserID

	if err := s.letterRepo.UpdateLetter(ctx, *letter); err != nil {
		return nil, fmt.Errorf("failed to update letter %s: %w", letterID, err)
	}
	return letter, nil
}

func (s *letterService) DeleteLetter(ctx context.Context, actor domain.Actor, letterID string) error {
	if err := s.Authorize(ctx, actor, domain.CapManageLetters); err != nil {
		return err
	}

	letter, err := s.letterRepo.FindLetterByID(ctx, letterID)
	if err != nil {
		return fmt.Errorf("failed to load letter %s for delete: %w", letterID, err)
	}

	if err := s.letterRepo.DeleteLetter(ctx, letterID); err != nil {
		return fmt.Errorf("failed to delete letter %s: %w", letterID, err)
	}

	if letter.AttachmentPath != "" {
		if err := s.fileStore.Delete(letter.AttachmentPath); err != nil {
			s.LogWarn(ctx, "Failed to remove letter attachment after delete",
				slog.String("letter_id", letterID), slog.String("path", letter.AttachmentPath), slog.String("error", err.Error()))
		}
	}

	s.LogInfo(ctx, "Letter deleted", slog.String("letter_id", letterID))
	return nil
}

func (s *letterService) AttachFile(ctx context.Context, actor domain.Actor, letterID string, filename string, content io.Reader) (*domain.Letter, error) {
	if err := s.Authorize(ctx, actor, domain.CapManageLetters); err != nil {
		return nil, err
	}

	letter, err := s.letterRepo.FindLetterByID(ctx, letterID)
	if err != nil {
		return nil, fmt.Errorf("failed to load letter %s for attachment: %w", letterID, err)
	}

	newPath, err := s.fileStore.Store(letterNamespace, filename, content)
	if err != nil {
		return nil, fmt.Errorf("failed to store letter attachment: %w", err)
	}

	oldPath := letter.AttachmentPath
	letter.AttachmentPath = newPath
	letter.LastUpdatedAt = time.Now()
	letter.LastUpdatedBy = actor.UserID

	if err := s.letterRepo.UpdateLetter(ctx, *letter); err != nil {
		return nil, fmt.Errorf("failed to update attachment path: %w", err)
	}

	if oldPath != "" {
		if err := s.fileStore.Delete(oldPath); err != nil {
			s.LogWarn(ctx, "Failed to remove previous letter attachment",
				slog.String("letter_id", letterID), slog.String("path", oldPath), slog.String("error", err.Error()))
		}
	}

	return letter, nil
}
