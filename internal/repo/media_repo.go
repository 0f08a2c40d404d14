package repo

import (
	"context"

	dom "github.com/vedp205/chronos-home/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

const mediaColumns = `id, user_id, name, content_type, size, key, created_at`

// MediaRepo provides media metadata persistence.
type MediaRepo interface {
	Create(ctx context.Context, m dom.MediaFile) (dom.MediaFile, error)
	GetByID(ctx context.Context, userID, id int64) (dom.MediaFile, error)
	List(ctx context.Context, userID int64) ([]dom.MediaFile, error)
	Delete(ctx context.Context, userID, id int64) error
}

type PGMediaRepo struct {
	db *pgxpool.Pool
}

func NewPGMediaRepo(db *pgxpool.Pool) *PGMediaRepo {
	return &PGMediaRepo{db: db}
}

func scanMedia(row interface{ Scan(...any) error }) (dom.MediaFile, error) {
	var m dom.MediaFile
	err := row.Scan(&m.ID, &m.UserID, &m.Name, &m.ContentType, &m.Size, &m.Key, &m.CreatedAt)
	return m, err
}

func (r *PGMediaRepo) Create(ctx context.Context, m dom.MediaFile) (dom.MediaFile, error) {
	query := `
		INSERT INTO media_files (user_id, name, content_type, size, key)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + mediaColumns
	return scanMedia(r.db.QueryRow(ctx, query, m.UserID, m.Name, m.ContentType, m.Size, m.Key))
}

func (r *PGMediaRepo) GetByID(ctx context.Context, userID, id int64) (dom.MediaFile, error) {
	query := `SELECT ` + mediaColumns + ` FROM media_files WHERE user_id = $1 AND id = $2`
	return scanMedia(r.db.QueryRow(ctx, query, userID, id))
}

func (r *PGMediaRepo) List(ctx context.Context, userID int64) ([]dom.MediaFile, error) {
	query := `SELECT ` + mediaColumns + ` FROM media_files WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.MediaFile
	for rows.Next() {
		m, err := scanMedia(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func (r *PGMediaRepo) Delete(ctx context.Context, userID, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM media_files WHERE user_id = $1 AND id = $2`, userID, id)
	return err
}
