package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"resto-pos/internal/domain"
)

type usersRepo struct {
	db *sql.DB
}

func (r *usersRepo) Create(ctx context.Context, u domain.User, passwordHash string) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO users (id, name, email, password_hash, role, created_at)
VALUES ($1, $2, $3, $4, $5, NOW())`,
		u.ID, u.Name, u.Email, passwordHash, u.Role)
	if err != nil {
		return fmt.Errorf("insert user %s: %w", u.Email, err)
	}
	return nil
}

func (r *usersRepo) GetByEmail(ctx context.Context, email string) (domain.User, string, error) {
	var u domain.User
	var hash string
	err := r.db.QueryRowContext(ctx, `
SELECT id, name, email, password_hash, role FROM users WHERE email = $1`, email).
		Scan(&u.ID, &u.Name, &u.Email, &hash, &u.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, "", ErrNotFound
	}
	if err != nil {
		return domain.User{}, "", fmt.Errorf("get user %s: %w", email, err)
	}
	return u, hash, nil
}
