package service

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dom "github.com/vedp205/chronos-home/internal/domain"
)

type fakeUserRepo struct {
	nextID  int64
	byEmail map[string]dom.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, byEmail: make(map[string]dom.User)}
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (dom.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return dom.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (dom.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return dom.User{}, pgx.ErrNoRows
}

func (f *fakeUserRepo) Create(ctx context.Context, email, fullName, passwordHash string) (dom.User, error) {
	if _, exists := f.byEmail[email]; exists {
		return dom.User{}, &pgconn.PgError{Code: "23505"}
	}
	u := dom.User{
		ID:           f.nextID,
		Email:        email,
		FullName:     fullName,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	f.nextID++
	f.byEmail[email] = u
	return u, nil
}

func TestRegisterAndValidateCredentials(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())
	ctx := context.Background()

	created, err := svc.Register(ctx, "  Ada@Example.COM ", " Ada Lovelace ", "s3cretpw")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", created.Email)
	assert.Equal(t, "Ada Lovelace", created.FullName)
	assert.NotEqual(t, "s3cretpw", created.PasswordHash)

	u, err := svc.ValidateCredentials(ctx, "ADA@example.com", "s3cretpw")
	require.NoError(t, err)
	assert.Equal(t, created.ID, u.ID)
}

func TestValidateCredentialsWrongPassword(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, "ada@example.com", "Ada", "s3cretpw")
	require.NoError(t, err)

	_, err = svc.ValidateCredentials(ctx, "ada@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateCredentialsUnknownEmail(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.ValidateCredentials(context.Background(), "nobody@example.com", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, "ada@example.com", "Ada", "s3cretpw")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Ada@Example.com", "Ada again", "otherpw")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestGetByIDUnknownUser(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}
