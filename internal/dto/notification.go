package dto

import "time"

type NotificationResponse struct {
	ID        int64     `json:"id"`
	TodoID    int64     `json:"todo_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type ListNotificationsResponse struct {
	Items []NotificationResponse `json:"items"`
}
