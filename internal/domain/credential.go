package domain

import "time"

// Credential is a stored password entry. The password is kept verbatim:
// visibility and clipboard copy are client-side toggles, so the value must
// round-trip unchanged.
type Credential struct {
	ID       int64
	UserID   int64
	Title    string
	Username string
	Password string
	URL      string
	Notes    string

	CreatedAt time.Time
	UpdatedAt time.Time
}
