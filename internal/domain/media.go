package domain

import "time"

// MediaFile is the metadata row for an uploaded media object. Key is the
// user-prefixed object-store path; the blob itself lives in storage.
type MediaFile struct {
	ID          int64
	UserID      int64
	Name        string
	ContentType string
	Size        int64
	Key         string

	CreatedAt time.Time
}
