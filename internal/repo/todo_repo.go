package repo

import (
	"context"
	"time"

	dom "github.com/vedp205/chronos-home/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const todoColumns = `id, user_id, title, description, completed, completed_at, due_at, priority, created_at, updated_at`

// TodoRepo provides todo persistence. Every query is scoped to a user.
type TodoRepo interface {
	Create(ctx context.Context, t dom.Todo) (dom.Todo, error)
	GetByID(ctx context.Context, userID, id int64) (dom.Todo, error)
	List(ctx context.Context, userID int64) ([]dom.Todo, error)
	Update(ctx context.Context, userID, id int64, patch dom.Todo) (dom.Todo, error)
	Delete(ctx context.Context, userID, id int64) error
	Search(ctx context.Context, userID int64, q string) ([]dom.Todo, error)
	DueWithin(ctx context.Context, userID int64, window time.Duration) ([]dom.Todo, error)
	DueWithinAll(ctx context.Context, window time.Duration) ([]dom.Todo, error)
}

type PGTodoRepo struct {
	db *pgxpool.Pool
}

func NewPGTodoRepo(db *pgxpool.Pool) *PGTodoRepo {
	return &PGTodoRepo{db: db}
}

func scanTodo(row interface{ Scan(...any) error }) (dom.Todo, error) {
	var t dom.Todo
	err := row.Scan(
		&t.ID, &t.UserID, &t.Title, &t.Description, &t.Completed, &t.CompletedAt,
		&t.DueAt, &t.Priority, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

func (r *PGTodoRepo) Create(ctx context.Context, t dom.Todo) (dom.Todo, error) {
	query := `
		INSERT INTO todos (user_id, title, description, due_at, priority)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + todoColumns
	return scanTodo(r.db.QueryRow(ctx, query, t.UserID, t.Title, t.Description, t.DueAt, t.Priority))
}

func (r *PGTodoRepo) GetByID(ctx context.Context, userID, id int64) (dom.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE user_id = $1 AND id = $2`
	return scanTodo(r.db.QueryRow(ctx, query, userID, id))
}

func (r *PGTodoRepo) List(ctx context.Context, userID int64) ([]dom.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE user_id = $1 ORDER BY created_at DESC`
	return r.queryTodos(ctx, query, userID)
}

// Update writes the full patch; the service merges fields and owns the
// completed/completed_at pairing.
func (r *PGTodoRepo) Update(ctx context.Context, userID, id int64, patch dom.Todo) (dom.Todo, error) {
	query := `
		UPDATE todos
		SET title = $3, description = $4, completed = $5, completed_at = $6,
		    due_at = $7, priority = $8, updated_at = NOW()
		WHERE user_id = $1 AND id = $2
		RETURNING ` + todoColumns
	return scanTodo(r.db.QueryRow(ctx, query, userID, id,
		patch.Title, patch.Description, patch.Completed, patch.CompletedAt,
		patch.DueAt, patch.Priority))
}

// Delete removes the todo permanently.
func (r *PGTodoRepo) Delete(ctx context.Context, userID, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM todos WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PGTodoRepo) Search(ctx context.Context, userID int64, q string) ([]dom.Todo, error) {
	pattern := "%" + q + "%"
	query := `
		SELECT ` + todoColumns + `
		FROM todos WHERE user_id = $1 AND (title ILIKE $2 OR description ILIKE $2)
		ORDER BY created_at DESC`
	return r.queryTodos(ctx, query, userID, pattern)
}

// DueWithin returns the user's incomplete todos due in (now, now+window].
func (r *PGTodoRepo) DueWithin(ctx context.Context, userID int64, window time.Duration) ([]dom.Todo, error) {
	query := `
		SELECT ` + todoColumns + `
		FROM todos
		WHERE user_id = $1 AND completed = FALSE AND due_at IS NOT NULL
		  AND due_at > NOW() AND due_at <= NOW() + $2
		ORDER BY due_at ASC`
	return r.queryTodos(ctx, query, userID, window)
}

// DueWithinAll is DueWithin across all users, for the notifier scan.
func (r *PGTodoRepo) DueWithinAll(ctx context.Context, window time.Duration) ([]dom.Todo, error) {
	query := `
		SELECT ` + todoColumns + `
		FROM todos
		WHERE completed = FALSE AND due_at IS NOT NULL
		  AND due_at > NOW() AND due_at <= NOW() + $1
		ORDER BY due_at ASC`
	return r.queryTodos(ctx, query, window)
}

func (r *PGTodoRepo) queryTodos(ctx context.Context, query string, args ...any) ([]dom.Todo, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Todo
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}
