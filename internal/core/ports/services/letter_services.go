package services

import (
	"context"
	"io"

	"github.com/himakom/orgadmin_backend/internal/core/domain"
	"github.com/himakom/orgadmin_backend/internal/dto"
)

// LetterSvcFacade manages incoming and outgoing correspondence.
type LetterSvcFacade interface {
	CreateLetter(ctx context.Context, actor domain.Actor, req dto.CreateLetterRequest) (*domain.Letter, error)
	GetLetterByID(ctx context.Context, actor domain.Actor, letterID string) (*domain.Letter, error)
	ListLetters(ctx context.Context, actor domain.Actor, direction domain.LetterDirection, limit, offset int) ([]domain.Letter, error)
	UpdateLetter(ctx context.Context, actor domain.Actor, letterID string, req dto.UpdateLetterRequest) (*domain.Letter, error)
	DeleteLetter(ctx context.Context, actor domain.Actor, letterID string) error
	AttachFile(ctx context.Context, actor domain.Actor, letterID string, filename string, content io.Reader) (*domain.Letter, error)
}
