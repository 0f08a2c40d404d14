package dto

import "time"

type CreateNoteRequest struct {
	Title   string `json:"title" binding:"required,min=1,max=120"`
	Content string `json:"content" binding:"max=20000"`
}

type UpdateNoteRequest struct {
	Title   *string `json:"title" binding:"omitempty,min=1,max=120"`
	Content *string `json:"content" binding:"omitempty,max=20000"`
}

type NoteResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ListNotesResponse struct {
	Items []NoteResponse `json:"items"`
}
