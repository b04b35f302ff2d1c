package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/clienthub/clienthub/internal/model"
	"github.com/clienthub/clienthub/pkg/db/transactor"
)

// UserRepository is the backend-agnostic contract over identity records.
// DeleteByID removes the user together with every customer the user owns.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*model.User, error)
	Upsert(ctx context.Context, u *model.User) (*model.User, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
}

type postgresUserRepository struct {
	trx transactor.PgxWithinTransactionExecutor
}

// NewPostgresUserRepository builds UserRepository on top of postgres
func NewPostgresUserRepository(trx transactor.PgxWithinTransactionExecutor) UserRepository {
	return &postgresUserRepository{trx: trx}
}

func (r *postgresUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	q := `SELECT id, email, first_name, last_name, profile_image_url, created_at, updated_at
            FROM users WHERE id = $1`

	u, err := r.scan(r.trx.Executor(ctx).QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return u, nil
}

// Upsert inserts the user or refreshes an existing row with the provided
// attributes, keeping the original creation timestamp.
func (r *postgresUserRepository) Upsert(ctx context.Context, u *model.User) (*model.User, error) {
	q := `INSERT INTO users(id, email, first_name, last_name, profile_image_url, created_at, updated_at)
			VALUES($1, $2, $3, $4, $5, $6, $7)
            ON CONFLICT (id) DO UPDATE
             SET email = EXCLUDED.email,
                 first_name = EXCLUDED.first_name,
                 last_name = EXCLUDED.last_name,
                 profile_image_url = EXCLUDED.profile_image_url,
                 updated_at = EXCLUDED.updated_at
            RETURNING id, email, first_name, last_name, profile_image_url, created_at, updated_at`

	row := r.trx.Executor(ctx).QueryRow(ctx, q, u.ID, u.Email, u.FirstName, u.LastName, u.ProfileImageURL, u.CreatedAt, u.UpdatedAt)
	return r.scan(row)
}

// DeleteByID removes the user row; owned customers go with it via the
// ON DELETE CASCADE foreign key.
func (r *postgresUserRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	q := "DELETE FROM users WHERE id = $1"

	comm, err := r.trx.Executor(ctx).Exec(ctx, q, id)
	if err != nil {
		return false, err
	}
	return comm.RowsAffected() > 0, nil
}

func (r *postgresUserRepository) scan(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.ProfileImageURL, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
