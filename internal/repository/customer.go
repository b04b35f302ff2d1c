package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/clienthub/clienthub/internal/apperrors"
	"github.com/clienthub/clienthub/internal/model"
	"github.com/clienthub/clienthub/pkg/db/transactor"
)

const pgUniqueViolationCode = "23505"

// CustomerRepository is the backend-agnostic contract over customer records.
// Every lookup and mutation is scoped by the owning user id, so a customer id
// belonging to another user resolves as absent (nil), never as someone
// else's record.
type CustomerRepository interface {
	FindAllByUserID(ctx context.Context, userID string) ([]*model.Customer, error)
	FindByID(ctx context.Context, id string, userID string) (*model.Customer, error)
	Create(ctx context.Context, c *model.Customer) error
	Update(ctx context.Context, c *model.Customer) (bool, error)
	DeleteByID(ctx context.Context, id string, userID string) (bool, error)
	IsEmailUnique(ctx context.Context, email string, userID string, excludeID string) (bool, error)
}

type postgresCustomerRepository struct {
	trx transactor.PgxWithinTransactionExecutor
}

// NewPostgresCustomerRepository builds CustomerRepository on top of postgres
func NewPostgresCustomerRepository(trx transactor.PgxWithinTransactionExecutor) CustomerRepository {
	return &postgresCustomerRepository{trx: trx}
}

func (r *postgresCustomerRepository) FindAllByUserID(ctx context.Context, userID string) ([]*model.Customer, error) {
	customers := make([]*model.Customer, 0)
	q := `SELECT id, user_id, name, email, phone, company, status, created_at, updated_at
            FROM customers WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.trx.Executor(ctx).Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		c, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *postgresCustomerRepository) FindByID(ctx context.Context, id string, userID string) (*model.Customer, error) {
	q := `SELECT id, user_id, name, email, phone, company, status, created_at, updated_at
            FROM customers WHERE id = $1 AND user_id = $2`

	c, err := r.scan(r.trx.Executor(ctx).QueryRow(ctx, q, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

func (r *postgresCustomerRepository) Create(ctx context.Context, c *model.Customer) error {
	q := `INSERT INTO customers(id, user_id, name, email, phone, company, status, created_at, updated_at)
			VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.trx.Executor(ctx).Exec(ctx, q, c.ID, c.UserID, c.Name, c.Email, c.Phone, c.Company, c.Status, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return r.uniquenessError(err, c.Email)
	}
	return nil
}

func (r *postgresCustomerRepository) Update(ctx context.Context, c *model.Customer) (bool, error) {
	q := `UPDATE customers SET name = $1, email = $2, phone = $3, company = $4, status = $5, updated_at = $6
            WHERE id = $7 AND user_id = $8`

	comm, err := r.trx.Executor(ctx).Exec(ctx, q, c.Name, c.Email, c.Phone, c.Company, c.Status, c.UpdatedAt, c.ID, c.UserID)
	if err != nil {
		return false, r.uniquenessError(err, c.Email)
	}
	return comm.RowsAffected() > 0, nil
}

func (r *postgresCustomerRepository) DeleteByID(ctx context.Context, id string, userID string) (bool, error) {
	q := "DELETE FROM customers WHERE id = $1 AND user_id = $2"

	comm, err := r.trx.Executor(ctx).Exec(ctx, q, id, userID)
	if err != nil {
		return false, err
	}
	return comm.RowsAffected() > 0, nil
}

// IsEmailUnique reports whether no customer of the user other than excludeID
// carries the email. Rows are selected by (email, user_id) with the excluded
// id filtered out via inequality, so an updated customer never conflicts
// with itself.
func (r *postgresCustomerRepository) IsEmailUnique(ctx context.Context, email string, userID string, excludeID string) (bool, error) {
	var count int

	var row pgx.Row
	if excludeID == "" {
		q := "SELECT count(id) FROM customers WHERE email = $1 AND user_id = $2"
		row = r.trx.Executor(ctx).QueryRow(ctx, q, email, userID)
	} else {
		q := "SELECT count(id) FROM customers WHERE email = $1 AND user_id = $2 AND id <> $3"
		row = r.trx.Executor(ctx).QueryRow(ctx, q, email, userID, excludeID)
	}

	if err := row.Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}

func (r *postgresCustomerRepository) scan(row pgx.Row) (*model.Customer, error) {
	var c model.Customer
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Email, &c.Phone, &c.Company, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// uniquenessError converts a composite unique index violation raised at
// write time into the typed business error, so a create racing past the
// pre-check still surfaces as a conflict to the caller.
func (r *postgresCustomerRepository) uniquenessError(err error, email string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode {
		return apperrors.NewEmailTakenErr(email)
	}
	return err
}
