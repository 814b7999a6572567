package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrijs2005/idkeeper/internal/common"
	"github.com/dmitrijs2005/idkeeper/internal/dbx"
	"github.com/dmitrijs2005/idkeeper/internal/server/models"
)

// Unique constraint names from the users migration.
const (
	constraintUserName = "users_username_key"
	constraintEmail    = "users_email_key"
)

// updateQueries is the whitelist of UPDATE statements; the column never comes
// from caller input.
var updateQueries = map[Column]string{
	ColumnUserName:     `UPDATE users SET username = $1 WHERE id = $2`,
	ColumnPasswordHash: `UPDATE users SET pwd_hash = $1 WHERE id = $2`,
	ColumnEmail:        `UPDATE users SET email = $1 WHERE id = $2`,
}

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) FindByUserName(ctx context.Context, userName string) (*models.User, error) {
	query :=
		`SELECT id, username, pwd_hash, email FROM users
		 WHERE username = $1
		 `
	return r.findOne(ctx, query, userName)
}

func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query :=
		`SELECT id, username, pwd_hash, email FROM users
		 WHERE email = $1
		 `
	return r.findOne(ctx, query, email)
}

func (r *PostgresRepository) findOne(ctx context.Context, query string, arg string) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&user.ID, &user.UserName, &user.PasswordHash, &user.Email)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query :=
		`INSERT INTO users (username, pwd_hash, email)
         VALUES ($1, $2, $3)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.UserName, user.PasswordHash, user.Email).Scan(&user.ID)

	if err != nil {
		return nil, mapWriteError(err)
	}

	return user, nil
}

func (r *PostgresRepository) UpdateField(ctx context.Context, id int64, column Column, value string) error {
	query, ok := updateQueries[column]
	if !ok {
		return fmt.Errorf("unsupported column %q", column)
	}

	res, err := r.db.ExecContext(ctx, query, value, id)
	if err != nil {
		return mapWriteError(err)
	}

	return requireOneRow(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return requireOneRow(res)
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.User, error) {
	query :=
		`SELECT id, username, pwd_hash, email FROM users
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.User
	for rows.Next() {
		u := &models.User{}
		if err := rows.Scan(&u.ID, &u.UserName, &u.PasswordHash, &u.Email); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func requireOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

// mapWriteError turns a unique violation into a conflict on the offending
// field and wraps everything else.
func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		switch pgErr.ConstraintName {
		case constraintUserName:
			return common.NewConflictError(common.FieldUsername)
		case constraintEmail:
			return common.NewConflictError(common.FieldEmail)
		}
		return fmt.Errorf("%w: %v", common.ErrorConflict, err)
	}
	return fmt.Errorf("db error: %w", err)
}
