package postgres

import (
	"context"
	"fmt"

	"github.com/hongminglow/skillbit-be/internal/models"
	"github.com/hongminglow/skillbit-be/internal/storage"
	"github.com/jackc/pgx/v5"
)

const jobColumns = `id, title, company, location, salary, description, experience, skills, referral_bonus, recruiter_email, posted_date`

// CreateJob inserts a posting and returns it with its assigned id.
func (s *Store) CreateJob(ctx context.Context, job storage.NewJob) (models.Job, error) {
	query := `
		INSERT INTO jobs (title, company, location, salary, description, experience, skills, referral_bonus, recruiter_email, posted_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + jobColumns
	row := s.pool.QueryRow(ctx, query,
		job.Title, job.Company, job.Location, job.Salary, job.Description,
		job.Experience, job.Skills, job.ReferralBonus, job.RecruiterEmail, job.PostedDate.String(),
	)
	created, err := scanJob(row)
	if err != nil {
		return models.Job{}, fmt.Errorf("insert job: %w", err)
	}
	return created, nil
}

// ListJobs returns jobs newest first, optionally filtered on title or company.
func (s *Store) ListJobs(ctx context.Context, search string) ([]models.Job, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if search == "" {
		rows, err = s.pool.Query(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY id DESC`)
	} else {
		pattern := "%" + escapeLike(search) + "%"
		rows, err = s.pool.Query(ctx, `
			SELECT `+jobColumns+` FROM jobs
			WHERE title ILIKE $1 OR company ILIKE $1
			ORDER BY id DESC`, pattern)
	}
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	jobs := []models.Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, nil
}

func scanJob(row pgx.Row) (models.Job, error) {
	var job models.Job
	err := row.Scan(&job.ID, &job.Title, &job.Company, &job.Location, &job.Salary, &job.Description,
		&job.Experience, &job.Skills, &job.ReferralBonus, &job.RecruiterEmail, &job.PostedDate.Time)
	return job, err
}

// escapeLike makes search match literally, so "%" or "_" in a query are not wildcards.
func escapeLike(s string) string {
	var out []rune
	for _, r := range s {
		switch r {
		case '\\', '%', '_':
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}
