package repo

import (
	"context"

	dom "github.com/vedp205/chronos-home/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

const noteColumns = `id, user_id, title, content, created_at, updated_at`

// NoteRepo provides note persistence.
type NoteRepo interface {
	Create(ctx context.Context, n dom.Note) (dom.Note, error)
	GetByID(ctx context.Context, userID, id int64) (dom.Note, error)
	List(ctx context.Context, userID int64) ([]dom.Note, error)
	Update(ctx context.Context, userID, id int64, n dom.Note) (dom.Note, error)
	Delete(ctx context.Context, userID, id int64) error
}

type PGNoteRepo struct {
	db *pgxpool.Pool
}

func NewPGNoteRepo(db *pgxpool.Pool) *PGNoteRepo {
	return &PGNoteRepo{db: db}
}

func scanNote(row interface{ Scan(...any) error }) (dom.Note, error) {
	var n dom.Note
	err := row.Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt)
	return n, err
}

func (r *PGNoteRepo) Create(ctx context.Context, n dom.Note) (dom.Note, error) {
	query := `
		INSERT INTO notes (user_id, title, content)
		VALUES ($1, $2, $3)
		RETURNING ` + noteColumns
	return scanNote(r.db.QueryRow(ctx, query, n.UserID, n.Title, n.Content))
}

func (r *PGNoteRepo) GetByID(ctx context.Context, userID, id int64) (dom.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE user_id = $1 AND id = $2`
	return scanNote(r.db.QueryRow(ctx, query, userID, id))
}

func (r *PGNoteRepo) List(ctx context.Context, userID int64) ([]dom.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, n)
	}
	return list, rows.Err()
}

func (r *PGNoteRepo) Update(ctx context.Context, userID, id int64, n dom.Note) (dom.Note, error) {
	query := `
		UPDATE notes SET title = $3, content = $4, updated_at = NOW()
		WHERE user_id = $1 AND id = $2
		RETURNING ` + noteColumns
	return scanNote(r.db.QueryRow(ctx, query, userID, id, n.Title, n.Content))
}

func (r *PGNoteRepo) Delete(ctx context.Context, userID, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM notes WHERE user_id = $1 AND id = $2`, userID, id)
	return err
}
