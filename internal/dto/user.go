package dto

// LoginRequest is the JSON body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest is the JSON body for POST /auth/register.
// PasswordConfirm must match Password; Password has a 6 character minimum.
type RegisterRequest struct {
	Email           string `json:"email" binding:"required,email,max=254"`
	FullName        string `json:"full_name" binding:"required,min=1,max=120"`
	Password        string `json:"password" binding:"required,min=6,max=72"`
	PasswordConfirm string `json:"password_confirm" binding:"required,eqfield=Password"`
}

// UserResponse is returned when user info is needed (e.g. after login or /auth/me).
type UserResponse struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}
