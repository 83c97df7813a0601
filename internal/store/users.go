package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/MuhammadRehanSaeed/uaar-employee-healthcare-dashboard/domain"
)

func (s *Store) CreateUser(ctx context.Context, u *domain.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	_, err := s.ext.ExecContext(ctx,
		`INSERT INTO users (id, name, email, password) VALUES (?, ?, ?, ?)`,
		u.ID, u.Name, u.Email, u.Password)
	return err
}

func (s *Store) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := sqlx.GetContext(ctx, s.ext, &u,
		`SELECT id, name, email, password, created_at FROM users WHERE email = ?`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Store) UpdateUserPassword(ctx context.Context, id, hashed string) error {
	res, err := s.ext.ExecContext(ctx, `UPDATE users SET password = ? WHERE id = ?`, hashed, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
