package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/hongminglow/skillbit-be/internal/models"
	"github.com/hongminglow/skillbit-be/internal/storage"
	"github.com/jackc/pgx/v5"
)

// CreateUser inserts a new user row. A taken email yields storage.ErrAlreadyExists.
func (s *Store) CreateUser(ctx context.Context, user models.User) error {
	const query = `
		INSERT INTO users (email, password, role, name, tokens, company, designation)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := s.pool.Exec(ctx, query, user.Email, user.PasswordHash, user.Role, user.Name, user.Tokens, user.Company, user.Designation)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// FindByEmail fetches a user by email address.
func (s *Store) FindByEmail(ctx context.Context, email string) (models.User, error) {
	const query = `
		SELECT email, password, role, name, tokens, company, designation, resume_text
		FROM users
		WHERE email = $1`
	row := s.pool.QueryRow(ctx, query, email)
	return scanUser(row)
}

// SaveResume replaces the stored resume text and credits reward tokens.
func (s *Store) SaveResume(ctx context.Context, email, text string, reward int) error {
	const query = `UPDATE users SET resume_text = $1, tokens = tokens + $2 WHERE email = $3`
	tag, err := s.pool.Exec(ctx, query, text, reward, email)
	if err != nil {
		return fmt.Errorf("update resume: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrUserNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (models.User, error) {
	var user models.User
	if err := row.Scan(&user.Email, &user.PasswordHash, &user.Role, &user.Name, &user.Tokens, &user.Company, &user.Designation, &user.ResumeText); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, storage.ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}
