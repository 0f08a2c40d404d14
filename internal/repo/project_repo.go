package repo

import (
	"context"

	dom "github.com/vedp205/chronos-home/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

const projectColumns = `id, user_id, name, description, status, created_at, updated_at`

// ProjectRepo provides project persistence.
type ProjectRepo interface {
	Create(ctx context.Context, p dom.Project) (dom.Project, error)
	GetByID(ctx context.Context, userID, id int64) (dom.Project, error)
	List(ctx context.Context, userID int64) ([]dom.Project, error)
	Update(ctx context.Context, userID, id int64, p dom.Project) (dom.Project, error)
	Delete(ctx context.Context, userID, id int64) error
}

type PGProjectRepo struct {
	db *pgxpool.Pool
}

func NewPGProjectRepo(db *pgxpool.Pool) *PGProjectRepo {
	return &PGProjectRepo{db: db}
}

func scanProject(row interface{ Scan(...any) error }) (dom.Project, error) {
	var p dom.Project
	err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Description, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *PGProjectRepo) Create(ctx context.Context, p dom.Project) (dom.Project, error) {
	query := `
		INSERT INTO projects (user_id, name, description, status)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + projectColumns
	return scanProject(r.db.QueryRow(ctx, query, p.UserID, p.Name, p.Description, p.Status))
}

func (r *PGProjectRepo) GetByID(ctx context.Context, userID, id int64) (dom.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE user_id = $1 AND id = $2`
	return scanProject(r.db.QueryRow(ctx, query, userID, id))
}

func (r *PGProjectRepo) List(ctx context.Context, userID int64) ([]dom.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *PGProjectRepo) Update(ctx context.Context, userID, id int64, p dom.Project) (dom.Project, error) {
	query := `
		UPDATE projects SET name = $3, description = $4, status = $5, updated_at = NOW()
		WHERE user_id = $1 AND id = $2
		RETURNING ` + projectColumns
	return scanProject(r.db.QueryRow(ctx, query, userID, id, p.Name, p.Description, p.Status))
}

func (r *PGProjectRepo) Delete(ctx context.Context, userID, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM projects WHERE user_id = $1 AND id = $2`, userID, id)
	return err
}
