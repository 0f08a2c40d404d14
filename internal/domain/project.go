package domain

import "time"

// ProjectStatus of a project.
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
	ProjectOnHold    ProjectStatus = "on_hold"
)

// Valid reports whether s is one of the known statuses.
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectActive, ProjectCompleted, ProjectOnHold:
		return true
	}
	return false
}

// Project is the domain entity for a project.
type Project struct {
	ID          int64
	UserID      int64
	Name        string
	Description string
	Status      ProjectStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}
