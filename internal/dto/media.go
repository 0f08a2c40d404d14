package dto

import "time"

type MediaResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	URL         string    `json:"url"`
	CreatedAt   time.Time `json:"created_at"`
}

type ListMediaResponse struct {
	Items []MediaResponse `json:"items"`
}
