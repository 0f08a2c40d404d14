package service

import (
	"context"
	"errors"
	"strings"

	dom "github.com/vedp205/chronos-home/internal/domain"
	"github.com/vedp205/chronos-home/internal/repo"

	"github.com/jackc/pgx/v5"
)

// NoteService handles note CRUD.
type NoteService struct {
	repo repo.NoteRepo
}

func NewNoteService(r repo.NoteRepo) *NoteService {
	return &NoteService{repo: r}
}

func (s *NoteService) Create(ctx context.Context, userID int64, title, content string) (dom.Note, error) {
	return s.repo.Create(ctx, dom.Note{
		UserID:  userID,
		Title:   strings.TrimSpace(title),
		Content: content,
	})
}

func (s *NoteService) List(ctx context.Context, userID int64) ([]dom.Note, error) {
	return s.repo.List(ctx, userID)
}

func (s *NoteService) GetByID(ctx context.Context, userID, id int64) (dom.Note, error) {
	n, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Note{}, ErrNotFound
		}
		return dom.Note{}, err
	}
	return n, nil
}

func (s *NoteService) Update(ctx context.Context, userID, id int64, title, content *string) (dom.Note, error) {
	existing, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return dom.Note{}, err
	}
	patch := existing
	if title != nil {
		patch.Title = strings.TrimSpace(*title)
	}
	if content != nil {
		patch.Content = *content
	}
	n, err := s.repo.Update(ctx, userID, id, patch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Note{}, ErrNotFound
		}
		return dom.Note{}, err
	}
	return n, nil
}

func (s *NoteService) Delete(ctx context.Context, userID, id int64) error {
	return s.repo.Delete(ctx, userID, id)
}
