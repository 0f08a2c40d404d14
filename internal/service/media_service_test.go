package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dom "github.com/vedp205/chronos-home/internal/domain"
	"github.com/vedp205/chronos-home/internal/storage"
)

type fakeMediaRepo struct {
	nextID    int64
	items     map[int64]dom.MediaFile
	createErr error
}

func newFakeMediaRepo() *fakeMediaRepo {
	return &fakeMediaRepo{nextID: 1, items: make(map[int64]dom.MediaFile)}
}

func (f *fakeMediaRepo) Create(ctx context.Context, m dom.MediaFile) (dom.MediaFile, error) {
	if f.createErr != nil {
		return dom.MediaFile{}, f.createErr
	}
	m.ID = f.nextID
	f.nextID++
	f.items[m.ID] = m
	return m, nil
}

func (f *fakeMediaRepo) GetByID(ctx context.Context, userID, id int64) (dom.MediaFile, error) {
	m, ok := f.items[id]
	if !ok || m.UserID != userID {
		return dom.MediaFile{}, pgx.ErrNoRows
	}
	return m, nil
}

func (f *fakeMediaRepo) List(ctx context.Context, userID int64) ([]dom.MediaFile, error) {
	var out []dom.MediaFile
	for _, m := range f.items {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMediaRepo) Delete(ctx context.Context, userID, id int64) error {
	delete(f.items, id)
	return nil
}

func newMediaService(t *testing.T, r *fakeMediaRepo) *MediaService {
	t.Helper()
	store, err := storage.NewLocalStore(t.TempDir(), "http://localhost:8080")
	require.NoError(t, err)
	return NewMediaService(r, store)
}

func TestUploadStoresBlobAndMetadata(t *testing.T) {
	r := newFakeMediaRepo()
	svc := newMediaService(t, r)

	m, err := svc.Upload(context.Background(), 1, "song.mp3", "audio/mpeg", strings.NewReader("audio"))
	require.NoError(t, err)
	assert.Equal(t, "song.mp3", m.Name)
	assert.Equal(t, int64(5), m.Size)
	assert.True(t, strings.HasPrefix(m.Key, "1/"))

	got, f, err := svc.Open(context.Background(), 1, m.ID)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, m.Key, got.Key)
}

func TestUploadRollsBackBlobOnMetadataFailure(t *testing.T) {
	r := newFakeMediaRepo()
	r.createErr = errors.New("insert failed")
	svc := newMediaService(t, r)

	_, err := svc.Upload(context.Background(), 1, "song.mp3", "audio/mpeg", strings.NewReader("audio"))
	require.Error(t, err)
	assert.Empty(t, r.items)
}

func TestOpenOtherUsersMediaIsNotFound(t *testing.T) {
	r := newFakeMediaRepo()
	svc := newMediaService(t, r)

	m, err := svc.Upload(context.Background(), 1, "private.mp4", "video/mp4", strings.NewReader("x"))
	require.NoError(t, err)

	_, _, err = svc.Open(context.Background(), 2, m.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteRemovesBlobAndMetadata(t *testing.T) {
	r := newFakeMediaRepo()
	svc := newMediaService(t, r)

	m, err := svc.Upload(context.Background(), 1, "clip.mov", "video/quicktime", strings.NewReader("x"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), 1, m.ID))

	_, _, err = svc.Open(context.Background(), 1, m.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
