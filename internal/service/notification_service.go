package service

import (
	"context"

	dom "github.com/vedp205/chronos-home/internal/domain"
	"github.com/vedp205/chronos-home/internal/repo"
)

// NotificationService serves the user's unread due-soon reminders.
type NotificationService struct {
	repo repo.NotificationRepo
}

func NewNotificationService(r repo.NotificationRepo) *NotificationService {
	return &NotificationService{repo: r}
}

func (s *NotificationService) ListUnread(ctx context.Context, userID int64) ([]dom.Notification, error) {
	return s.repo.ListUnread(ctx, userID)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID int64) error {
	return s.repo.MarkAllRead(ctx, userID)
}
