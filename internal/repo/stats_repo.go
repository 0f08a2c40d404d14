package repo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Stats are the dashboard counters for one user.
type Stats struct {
	Projects       int64
	ActiveProjects int64
	Credentials    int64
	Notes          int64
	MediaFiles     int64
	Todos          int64
	ActiveTodos    int64
	CompletedTodos int64
	DueSoonTodos   int64
}

// StatsRepo aggregates per-user entity counts.
type StatsRepo interface {
	Get(ctx context.Context, userID int64, dueWindow time.Duration) (Stats, error)
}

type PGStatsRepo struct {
	db *pgxpool.Pool
}

func NewPGStatsRepo(db *pgxpool.Pool) *PGStatsRepo {
	return &PGStatsRepo{db: db}
}

// Get collects all dashboard counts in a single round trip.
func (r *PGStatsRepo) Get(ctx context.Context, userID int64, dueWindow time.Duration) (Stats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM projects WHERE user_id = $1),
			(SELECT COUNT(*) FROM projects WHERE user_id = $1 AND status = 'active'),
			(SELECT COUNT(*) FROM credentials WHERE user_id = $1),
			(SELECT COUNT(*) FROM notes WHERE user_id = $1),
			(SELECT COUNT(*) FROM media_files WHERE user_id = $1),
			(SELECT COUNT(*) FROM todos WHERE user_id = $1),
			(SELECT COUNT(*) FROM todos WHERE user_id = $1 AND completed = FALSE),
			(SELECT COUNT(*) FROM todos WHERE user_id = $1 AND completed = TRUE),
			(SELECT COUNT(*) FROM todos WHERE user_id = $1 AND completed = FALSE
				AND due_at IS NOT NULL AND due_at > NOW() AND due_at <= NOW() + $2)`
	var s Stats
	err := r.db.QueryRow(ctx, query, userID, dueWindow).Scan(
		&s.Projects, &s.ActiveProjects, &s.Credentials, &s.Notes, &s.MediaFiles,
		&s.Todos, &s.ActiveTodos, &s.CompletedTodos, &s.DueSoonTodos,
	)
	return s, err
}
