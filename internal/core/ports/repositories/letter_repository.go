package repositories

import (
	"context"

	"github.com/himakom/orgadmin_backend/internal/core/domain"
)

// LetterRepository persists correspondence records.
type LetterRepository interface {
	SaveLetter(ctx context.Context, letter domain.Letter) error
	FindLetterByID(ctx context.Context, letterID string) (*domain.Letter, error)
	FindLetterByReference(ctx context.Context, referenceNumber string) (*domain.Letter, error)
	FindLetters(ctx context.Context, direction domain.LetterDirection, limit, offset int) ([]domain.Letter, error)
	UpdateLetter(ctx context.Context, letter domain.Letter) error
	DeleteLetter(ctx context.Context, letterID string) error
}
