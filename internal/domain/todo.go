package domain

import "time"

// Priority of a todo item.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Rank orders priorities for sorting: high before medium before low.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// Todo is the domain entity for a to-do item.
// CompletedAt is non-nil exactly when Completed is true; the service layer
// maintains that pairing on every toggle and update.
type Todo struct {
	ID          int64
	UserID      int64
	Title       string
	Description string
	Completed   bool
	CompletedAt *time.Time
	DueAt       *time.Time
	Priority    Priority

	CreatedAt time.Time
	UpdatedAt time.Time
}
