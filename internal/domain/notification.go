package domain

import "time"

// Notification is a due-soon reminder emitted by the notifier for a todo.
type Notification struct {
	ID      int64
	UserID  int64
	TodoID  int64
	Title   string
	Message string

	CreatedAt time.Time
	ReadAt    *time.Time
}
