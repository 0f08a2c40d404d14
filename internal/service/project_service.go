package service

import (
	"context"
	"errors"
	"strings"

	dom "github.com/vedp205/chronos-home/internal/domain"
	"github.com/vedp205/chronos-home/internal/repo"

	"github.com/jackc/pgx/v5"
)

// ProjectService handles project CRUD.
type ProjectService struct {
	repo repo.ProjectRepo
}

func NewProjectService(r repo.ProjectRepo) *ProjectService {
	return &ProjectService{repo: r}
}

func (s *ProjectService) Create(ctx context.Context, userID int64, name, desc string, status dom.ProjectStatus) (dom.Project, error) {
	if !status.Valid() {
		status = dom.ProjectActive
	}
	return s.repo.Create(ctx, dom.Project{
		UserID:      userID,
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(desc),
		Status:      status,
	})
}

func (s *ProjectService) List(ctx context.Context, userID int64) ([]dom.Project, error) {
	return s.repo.List(ctx, userID)
}

func (s *ProjectService) GetByID(ctx context.Context, userID, id int64) (dom.Project, error) {
	p, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Project{}, ErrNotFound
		}
		return dom.Project{}, err
	}
	return p, nil
}

func (s *ProjectService) Update(ctx context.Context, userID, id int64, name, desc *string, status *dom.ProjectStatus) (dom.Project, error) {
	existing, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return dom.Project{}, err
	}
	patch := existing
	if name != nil {
		patch.Name = strings.TrimSpace(*name)
	}
	if desc != nil {
		patch.Description = strings.TrimSpace(*desc)
	}
	if status != nil && status.Valid() {
		patch.Status = *status
	}
	p, err := s.repo.Update(ctx, userID, id, patch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Project{}, ErrNotFound
		}
		return dom.Project{}, err
	}
	return p, nil
}

func (s *ProjectService) Delete(ctx context.Context, userID, id int64) error {
	return s.repo.Delete(ctx, userID, id)
}
