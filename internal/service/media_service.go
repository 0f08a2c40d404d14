package service

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	dom "github.com/vedp205/chronos-home/internal/domain"
	"github.com/vedp205/chronos-home/internal/repo"

	"github.com/jackc/pgx/v5"
)

// ObjectStore is the blob gateway behind the media library.
type ObjectStore interface {
	Save(userID int64, filename string, r io.Reader) (key string, size int64, err error)
	Open(key string) (*os.File, error)
	Remove(key string) error
	PublicURL(mediaID int64) string
}

// MediaService manages uploaded media: blob in the object store,
// metadata row in Postgres.
type MediaService struct {
	repo  repo.MediaRepo
	store ObjectStore
}

func NewMediaService(r repo.MediaRepo, store ObjectStore) *MediaService {
	return &MediaService{repo: r, store: store}
}

// Upload stores the blob under a user-prefixed key and records metadata.
// A failed metadata insert rolls the blob back.
func (s *MediaService) Upload(ctx context.Context, userID int64, name, contentType string, r io.Reader) (dom.MediaFile, error) {
	name = strings.TrimSpace(name)
	key, size, err := s.store.Save(userID, name, r)
	if err != nil {
		return dom.MediaFile{}, err
	}
	m, err := s.repo.Create(ctx, dom.MediaFile{
		UserID:      userID,
		Name:        name,
		ContentType: contentType,
		Size:        size,
		Key:         key,
	})
	if err != nil {
		_ = s.store.Remove(key)
		return dom.MediaFile{}, err
	}
	return m, nil
}

func (s *MediaService) List(ctx context.Context, userID int64) ([]dom.MediaFile, error) {
	return s.repo.List(ctx, userID)
}

func (s *MediaService) GetByID(ctx context.Context, userID, id int64) (dom.MediaFile, error) {
	m, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.MediaFile{}, ErrNotFound
		}
		return dom.MediaFile{}, err
	}
	return m, nil
}

// Open returns the blob for streaming. The caller closes it.
func (s *MediaService) Open(ctx context.Context, userID, id int64) (dom.MediaFile, *os.File, error) {
	m, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return dom.MediaFile{}, nil, err
	}
	f, err := s.store.Open(m.Key)
	if err != nil {
		return dom.MediaFile{}, nil, err
	}
	return m, f, nil
}

// Delete removes the metadata row first, then the blob; a missing blob is
// not an error so delete stays idempotent.
func (s *MediaService) Delete(ctx context.Context, userID, id int64) error {
	m, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return err
	}
	return s.store.Remove(m.Key)
}

// PublicURL returns the stream URL for a media file.
func (s *MediaService) PublicURL(m dom.MediaFile) string {
	return s.store.PublicURL(m.ID)
}
