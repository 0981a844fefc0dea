package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/cghdev/userdesk/internal/common"
	"github.com/cghdev/userdesk/internal/server/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgresRepository persists users in a PostgreSQL table.
type PostgresRepository struct {
	db DB
}

func NewPostgresRepository(db DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// uniqueViolation is the PostgreSQL error code raised when an insert or
// update breaks a unique index.
const uniqueViolation = "23505"

func translate(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return common.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", common.ErrDuplicate, pgErr.ConstraintName)
	}
	return err
}

func (r *PostgresRepository) FindAll(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.Query(ctx,
		"SELECT id, name, email, phone_number FROM users ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PhoneNumber); err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	return result, rows.Err()
}

func (r *PostgresRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	var u models.User
	err := r.db.QueryRow(ctx,
		"SELECT id, name, email, phone_number FROM users WHERE id = $1", id).
		Scan(&u.ID, &u.Name, &u.Email, &u.PhoneNumber)
	if err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *PostgresRepository) Create(ctx context.Context, u *models.User) (*models.User, error) {
	saved := *u
	err := r.db.QueryRow(ctx,
		"INSERT INTO users (name, email, phone_number) VALUES ($1, $2, $3) RETURNING id",
		u.Name, u.Email, u.PhoneNumber).Scan(&saved.ID)
	if err != nil {
		return nil, translate(err)
	}
	return &saved, nil
}

func (r *PostgresRepository) Update(ctx context.Context, u *models.User) (*models.User, error) {
	tag, err := r.db.Exec(ctx,
		"UPDATE users SET name = $1, email = $2, phone_number = $3 WHERE id = $4",
		u.Name, u.Email, u.PhoneNumber, u.ID)
	if err != nil {
		return nil, translate(err)
	}
	if tag.RowsAffected() == 0 {
		return nil, common.ErrNotFound
	}
	saved := *u
	return &saved, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
