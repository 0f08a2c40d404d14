// Package storage is the object-store gateway for uploaded media. Blobs live
// on local disk under user-prefixed keys; metadata stays in Postgres.
package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// LocalStore stores objects as files under a root directory. Keys look like
// "<userID>/<uuid><ext>" so every object is scoped to its owner.
type LocalStore struct {
	root          string
	publicBaseURL string
}

// NewLocalStore creates the root directory if needed.
func NewLocalStore(root, publicBaseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("storage root: %w", err)
	}
	return &LocalStore{root: root, publicBaseURL: strings.TrimRight(publicBaseURL, "/")}, nil
}

// Save writes r to a new object for userID and returns its key and size.
// The original filename only contributes its extension; the stored name is
// a fresh UUID so uploads can never collide or traverse paths.
func (s *LocalStore) Save(userID int64, filename string, r io.Reader) (key string, size int64, err error) {
	ext := strings.ToLower(filepath.Ext(filename))
	key = path.Join(strconv.FormatInt(userID, 10), uuid.NewString()+ext)

	dst := filepath.Join(s.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", 0, fmt.Errorf("storage mkdir: %w", err)
	}
	f, err := os.Create(dst)
	if err != nil {
		return "", 0, fmt.Errorf("storage create: %w", err)
	}
	size, err = io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(dst)
		return "", 0, fmt.Errorf("storage write: %w", err)
	}
	return key, size, nil
}

// Open returns the object file for serving. The caller closes it.
func (s *LocalStore) Open(key string) (*os.File, error) {
	return os.Open(filepath.Join(s.root, filepath.FromSlash(key)))
}

// Remove deletes the object. Missing objects are not an error.
func (s *LocalStore) Remove(key string) error {
	err := os.Remove(filepath.Join(s.root, filepath.FromSlash(key)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// PublicURL returns the URL a client streams the media file from.
func (s *LocalStore) PublicURL(mediaID int64) string {
	return fmt.Sprintf("%s/api/v1/media/%d/stream", s.publicBaseURL, mediaID)
}
