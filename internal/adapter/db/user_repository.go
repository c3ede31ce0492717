package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"todoapp/internal/core/domain"
	"todoapp/internal/core/ports"
)

const mysqlDuplicateEntry = 1062

const insertUserQuery = `
INSERT INTO users (first_name, email, password_hash)
VALUES (?, ?, ?);
`

const findUserByEmailQuery = `
SELECT id, first_name, email, password_hash, created_at, updated_at
FROM users
WHERE email = ?;
`

const findUserByIDQuery = `
SELECT id, first_name, email, password_hash, created_at, updated_at
FROM users
WHERE id = ?;
`

const deleteUserQuery = `
DELETE FROM users
WHERE id = ?;
`

type UserRepository struct {
	db *sqlx.DB
}

type userRow struct {
	ID           uint64    `db:"id"`
	FirstName    string    `db:"first_name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, firstName, email, passwordHash string) (domain.User, error) {
	result, err := r.db.ExecContext(ctx, insertUserQuery, firstName, email, passwordHash)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return domain.User{}, domain.ErrEmailTaken
		}
		return domain.User{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.User{}, err
	}

	return r.FindByID(ctx, uint64(id))
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	var row userRow
	if err := r.db.GetContext(ctx, &row, findUserByEmailQuery, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}

	return mapUserRowToDomainUser(row), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint64) (domain.User, error) {
	var row userRow
	if err := r.db.GetContext(ctx, &row, findUserByIDQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}

	return mapUserRowToDomainUser(row), nil
}

func (r *UserRepository) Delete(ctx context.Context, id uint64) (int64, error) {
	result, err := r.db.ExecContext(ctx, deleteUserQuery, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func mapUserRowToDomainUser(row userRow) domain.User {
	return domain.User{
		ID:           row.ID,
		FirstName:    row.FirstName,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
