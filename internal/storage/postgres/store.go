package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/hongminglow/skillbit-be/internal/storage"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure Store satisfies the storage.Store interface at compile time.
var _ storage.Store = (*Store)(nil)

// Store provides Postgres-backed persistence for users, jobs and applications.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates a new Store and runs migrations.
func NewStore(ctx context.Context, databaseURL string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	s := &Store{pool: pool}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return s, nil
}

// Close releases database resources.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Store) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			email TEXT PRIMARY KEY,
			password TEXT NOT NULL,
			role TEXT NOT NULL,
			name TEXT NOT NULL,
			tokens INTEGER NOT NULL DEFAULT 50,
			company TEXT NOT NULL DEFAULT '',
			designation TEXT NOT NULL DEFAULT '',
			resume_text TEXT,
			CONSTRAINT users_tokens_non_negative CHECK (tokens >= 0)
		);`,
		`CREATE TABLE IF NOT EXISTS jobs (
			id BIGSERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			company TEXT NOT NULL,
			location TEXT NOT NULL DEFAULT '',
			salary TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			experience TEXT NOT NULL DEFAULT '',
			skills TEXT NOT NULL DEFAULT '',
			referral_bonus INTEGER NOT NULL DEFAULT 0,
			recruiter_email TEXT NOT NULL DEFAULT '',
			posted_date DATE NOT NULL DEFAULT CURRENT_DATE
		);`,
		`CREATE TABLE IF NOT EXISTS applications (
			id BIGSERIAL PRIMARY KEY,
			job_id BIGINT NOT NULL REFERENCES jobs(id),
			user_email TEXT NOT NULL REFERENCES users(email),
			job_title TEXT NOT NULL,
			company TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'Received',
			date DATE NOT NULL DEFAULT CURRENT_DATE,
			ai_score INTEGER NOT NULL
		);`,
		`ALTER TABLE users ADD COLUMN IF NOT EXISTS resume_text TEXT;`,
		`DO $$
		BEGIN
			IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'users_tokens_non_negative') THEN
				ALTER TABLE users ADD CONSTRAINT users_tokens_non_negative CHECK (tokens >= 0);
			END IF;
		END $$;`,
		`CREATE INDEX IF NOT EXISTS applications_user_email_idx ON applications (user_email);`,
		`CREATE INDEX IF NOT EXISTS applications_job_id_idx ON applications (job_id);`,
	}
	for _, stmt := range stmts {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func isCheckViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23514"
}
