package service

import (
	"context"
	"errors"
	"strings"

	dom "github.com/vedp205/chronos-home/internal/domain"
	"github.com/vedp205/chronos-home/internal/repo"

	"github.com/jackc/pgx/v5"
)

// CredentialService handles stored-password CRUD. The password value is
// persisted and returned verbatim.
type CredentialService struct {
	repo repo.CredentialRepo
}

func NewCredentialService(r repo.CredentialRepo) *CredentialService {
	return &CredentialService{repo: r}
}

func (s *CredentialService) Create(ctx context.Context, c dom.Credential) (dom.Credential, error) {
	c.Title = strings.TrimSpace(c.Title)
	c.Username = strings.TrimSpace(c.Username)
	c.URL = strings.TrimSpace(c.URL)
	return s.repo.Create(ctx, c)
}

func (s *CredentialService) List(ctx context.Context, userID int64) ([]dom.Credential, error) {
	return s.repo.List(ctx, userID)
}

func (s *CredentialService) GetByID(ctx context.Context, userID, id int64) (dom.Credential, error) {
	c, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Credential{}, ErrNotFound
		}
		return dom.Credential{}, err
	}
	return c, nil
}

func (s *CredentialService) Update(ctx context.Context, userID, id int64, title, username, password, url, notes *string) (dom.Credential, error) {
	existing, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return dom.Credential{}, err
	}
	patch := existing
	if title != nil {
		patch.Title = strings.TrimSpace(*title)
	}
	if username != nil {
		patch.Username = strings.TrimSpace(*username)
	}
	if password != nil {
		patch.Password = *password
	}
	if url != nil {
		patch.URL = strings.TrimSpace(*url)
	}
	if notes != nil {
		patch.Notes = *notes
	}
	c, err := s.repo.Update(ctx, userID, id, patch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Credential{}, ErrNotFound
		}
		return dom.Credential{}, err
	}
	return c, nil
}

func (s *CredentialService) Delete(ctx context.Context, userID, id int64) error {
	return s.repo.Delete(ctx, userID, id)
}
