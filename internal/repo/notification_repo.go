package repo

import (
	"context"

	dom "github.com/vedp205/chronos-home/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NotificationRepo provides due-soon notification persistence.
type NotificationRepo interface {
	Create(ctx context.Context, n dom.Notification) (dom.Notification, error)
	ListUnread(ctx context.Context, userID int64) ([]dom.Notification, error)
	MarkAllRead(ctx context.Context, userID int64) error
}

type PGNotificationRepo struct {
	db *pgxpool.Pool
}

func NewPGNotificationRepo(db *pgxpool.Pool) *PGNotificationRepo {
	return &PGNotificationRepo{db: db}
}

func (r *PGNotificationRepo) Create(ctx context.Context, n dom.Notification) (dom.Notification, error) {
	query := `
		INSERT INTO notifications (user_id, todo_id, title, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, todo_id, title, message, created_at, read_at`
	var out dom.Notification
	err := r.db.QueryRow(ctx, query, n.UserID, n.TodoID, n.Title, n.Message).Scan(
		&out.ID, &out.UserID, &out.TodoID, &out.Title, &out.Message, &out.CreatedAt, &out.ReadAt,
	)
	return out, err
}

func (r *PGNotificationRepo) ListUnread(ctx context.Context, userID int64) ([]dom.Notification, error) {
	query := `
		SELECT id, user_id, todo_id, title, message, created_at, read_at
		FROM notifications WHERE user_id = $1 AND read_at IS NULL
		ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Notification
	for rows.Next() {
		var n dom.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.TodoID, &n.Title, &n.Message,
			&n.CreatedAt, &n.ReadAt); err != nil {
			return nil, err
		}
		list = append(list, n)
	}
	return list, rows.Err()
}

func (r *PGNotificationRepo) MarkAllRead(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx,
		`UPDATE notifications SET read_at = NOW() WHERE user_id = $1 AND read_at IS NULL`, userID)
	return err
}
