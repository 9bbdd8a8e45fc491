package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/tripverse/travel-api/internal/domain"
	"github.com/tripverse/travel-api/internal/repository/ports"
)

const userColumns = `
	id, email, name, avatar_url, password_hash, password_salt,
	google_linked, is_admin, is_active, created_at, updated_at
`

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepo(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateEmailUser(ctx context.Context, email, name string, passwordHash, passwordSalt []byte) (*domain.User, error) {
	const query = `
		INSERT INTO user_account (email, name, password_hash, password_salt)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + userColumns + `
	`
	row := r.db.QueryRowxContext(ctx, query, email, name, passwordHash, passwordSalt)
	var user domain.User
	if err := row.StructScan(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) UpsertGoogleUser(ctx context.Context, email string, name *string, avatarURL *string) (*domain.User, error) {
	const query = `
		INSERT INTO user_account (email, name, avatar_url, google_linked)
		VALUES ($1, COALESCE($2, ''), $3, TRUE)
		ON CONFLICT (email) DO UPDATE
		SET name = COALESCE(NULLIF(EXCLUDED.name, ''), user_account.name),
		    avatar_url = COALESCE(EXCLUDED.avatar_url, user_account.avatar_url),
		    google_linked = TRUE,
		    updated_at = NOW()
		RETURNING ` + userColumns + `
	`
	row := r.db.QueryRowxContext(ctx, query, email, name, avatarURL)
	var user domain.User
	if err := row.StructScan(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM user_account WHERE email = $1`

	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM user_account WHERE id = $1`

	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, name *string, avatarURL *string) (*domain.User, error) {
	const query = `
		UPDATE user_account
		SET name = COALESCE($2, name),
		    avatar_url = COALESCE($3, avatar_url),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns + `
	`
	row := r.db.QueryRowxContext(ctx, query, id, name, avatarURL)
	var user domain.User
	if err := row.StructScan(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash, passwordSalt []byte) error {
	const query = `
		UPDATE user_account
		SET password_hash = $2,
		    password_salt = $3,
		    updated_at = NOW()
		WHERE id = $1
	`
	return execExpectingRow(ctx, r.db, query, id, passwordHash, passwordSalt)
}

var _ ports.UserRepository = (*UserRepository)(nil)
