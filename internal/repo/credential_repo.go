package repo

import (
	"context"

	dom "github.com/vedp205/chronos-home/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

const credentialColumns = `id, user_id, title, username, password, url, notes, created_at, updated_at`

// CredentialRepo provides stored-password persistence.
type CredentialRepo interface {
	Create(ctx context.Context, c dom.Credential) (dom.Credential, error)
	GetByID(ctx context.Context, userID, id int64) (dom.Credential, error)
	List(ctx context.Context, userID int64) ([]dom.Credential, error)
	Update(ctx context.Context, userID, id int64, c dom.Credential) (dom.Credential, error)
	Delete(ctx context.Context, userID, id int64) error
}

type PGCredentialRepo struct {
	db *pgxpool.Pool
}

func NewPGCredentialRepo(db *pgxpool.Pool) *PGCredentialRepo {
	return &PGCredentialRepo{db: db}
}

func scanCredential(row interface{ Scan(...any) error }) (dom.Credential, error) {
	var c dom.Credential
	err := row.Scan(&c.ID, &c.UserID, &c.Title, &c.Username, &c.Password, &c.URL, &c.Notes,
		&c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *PGCredentialRepo) Create(ctx context.Context, c dom.Credential) (dom.Credential, error) {
	query := `
		INSERT INTO credentials (user_id, title, username, password, url, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + credentialColumns
	return scanCredential(r.db.QueryRow(ctx, query,
		c.UserID, c.Title, c.Username, c.Password, c.URL, c.Notes))
}

func (r *PGCredentialRepo) GetByID(ctx context.Context, userID, id int64) (dom.Credential, error) {
	query := `SELECT ` + credentialColumns + ` FROM credentials WHERE user_id = $1 AND id = $2`
	return scanCredential(r.db.QueryRow(ctx, query, userID, id))
}

func (r *PGCredentialRepo) List(ctx context.Context, userID int64) ([]dom.Credential, error) {
	query := `SELECT ` + credentialColumns + ` FROM credentials WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Credential
	for rows.Next() {
		c, err := scanCredential(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *PGCredentialRepo) Update(ctx context.Context, userID, id int64, c dom.Credential) (dom.Credential, error) {
	query := `
		UPDATE credentials
		SET title = $3, username = $4, password = $5, url = $6, notes = $7, updated_at = NOW()
		WHERE user_id = $1 AND id = $2
		RETURNING ` + credentialColumns
	return scanCredential(r.db.QueryRow(ctx, query, userID, id,
		c.Title, c.Username, c.Password, c.URL, c.Notes))
}

func (r *PGCredentialRepo) Delete(ctx context.Context, userID, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM credentials WHERE user_id = $1 AND id = $2`, userID, id)
	return err
}
