package domain

import "time"

// Note is a free-form text note.
type Note struct {
	ID      int64
	UserID  int64
	Title   string
	Content string

	CreatedAt time.Time
	UpdatedAt time.Time
}
