package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/hongminglow/skillbit-be/internal/credits"
	"github.com/hongminglow/skillbit-be/internal/models"
	"github.com/hongminglow/skillbit-be/internal/storage"
	"github.com/jackc/pgx/v5"
)

// Apply charges the user for the job and records the application in one transaction.
// The user row is locked for the duration, so concurrent applications by the same
// user see each other's debits.
func (s *Store) Apply(ctx context.Context, params storage.ApplyParams) (models.Application, error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return models.Application{}, fmt.Errorf("begin apply: %w", err)
	}
	defer tx.Rollback(ctx)

	var job models.Job
	err = tx.QueryRow(ctx, `SELECT id, title, company, referral_bonus FROM jobs WHERE id = $1`, params.JobID).
		Scan(&job.ID, &job.Title, &job.Company, &job.ReferralBonus)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Application{}, storage.ErrJobNotFound
		}
		return models.Application{}, fmt.Errorf("load job: %w", err)
	}

	cost := credits.ApplicationCost(job, params.ReferralFee)

	var balance int
	err = tx.QueryRow(ctx, `SELECT tokens FROM users WHERE email = $1 FOR UPDATE`, params.UserEmail).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Application{}, storage.ErrUserNotFound
		}
		return models.Application{}, fmt.Errorf("load balance: %w", err)
	}

	if !credits.CanAfford(balance, cost) {
		return models.Application{}, storage.ErrInsufficientCredits
	}

	if cost > 0 {
		if _, err := tx.Exec(ctx, `UPDATE users SET tokens = tokens - $1 WHERE email = $2`, cost, params.UserEmail); err != nil {
			return models.Application{}, debitError(err)
		}
	}

	app := models.Application{
		JobID:     job.ID,
		UserEmail: params.UserEmail,
		JobTitle:  job.Title,
		Company:   job.Company,
		Status:    models.StatusReceived,
		Date:      params.Date,
		AIScore:   params.AIScore,
		Cost:      cost,
	}
	err = tx.QueryRow(ctx, `
		INSERT INTO applications (job_id, user_email, job_title, company, status, date, ai_score)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		app.JobID, app.UserEmail, app.JobTitle, app.Company, app.Status, app.Date.String(), app.AIScore,
	).Scan(&app.ID)
	if err != nil {
		return models.Application{}, fmt.Errorf("insert application: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return models.Application{}, fmt.Errorf("commit apply: %w", err)
	}
	return app, nil
}

// debitError reports a balance that would go negative as ErrInsufficientCredits.
func debitError(err error) error {
	if isCheckViolation(err) {
		return storage.ErrInsufficientCredits
	}
	return fmt.Errorf("debit tokens: %w", err)
}
