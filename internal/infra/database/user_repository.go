package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rajudas/field-sales-api/internal/entity"
)

type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// FindByUsername returns nil when the user does not exist; the caller folds
// that into the generic credentials failure.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := `SELECT id, username, password_hash, role, full_name FROM users WHERE username = $1`

	var u entity.User
	var fullName sql.NullString
	err := r.DB.QueryRowContext(ctx, query, username).Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&u.Role,
		&fullName,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, &entity.PersistenceError{Op: "find user", Err: err}
	}

	u.FullName = fullName.String
	return &u, nil
}
