package dto

import "time"

type CreateCredentialRequest struct {
	Title    string `json:"title" binding:"required,min=1,max=120"`
	Username string `json:"username" binding:"max=254"`
	Password string `json:"password" binding:"required,max=1000"`
	URL      string `json:"url" binding:"omitempty,max=2000"`
	Notes    string `json:"notes" binding:"max=1000"`
}

type UpdateCredentialRequest struct {
	Title    *string `json:"title" binding:"omitempty,min=1,max=120"`
	Username *string `json:"username" binding:"omitempty,max=254"`
	Password *string `json:"password" binding:"omitempty,max=1000"`
	URL      *string `json:"url" binding:"omitempty,max=2000"`
	Notes    *string `json:"notes" binding:"omitempty,max=1000"`
}

// CredentialResponse returns the password verbatim: show/hide and clipboard
// copy are client-side toggles over the stored value.
type CredentialResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	URL       string    `json:"url"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ListCredentialsResponse struct {
	Items []CredentialResponse `json:"items"`
}
