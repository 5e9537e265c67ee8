package storage

import (
	"context"
	"errors"

	"github.com/hongminglow/skillbit-be/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// ErrJobNotFound and ErrUserNotFound narrow ErrNotFound to the missing entity.
var (
	ErrJobNotFound  error = &notFoundError{entity: "job"}
	ErrUserNotFound error = &notFoundError{entity: "user"}
)

// ErrInsufficientCredits indicates the user's token balance cannot cover an operation.
var ErrInsufficientCredits = errors.New("insufficient credits")

type notFoundError struct {
	entity string
}

func (e *notFoundError) Error() string { return e.entity + " not found" }

func (e *notFoundError) Is(target error) bool { return target == ErrNotFound }

// NewJob holds the caller-supplied fields of a job posting.
type NewJob struct {
	Title          string
	Company        string
	Location       string
	Salary         string
	Description    string
	Experience     string
	Skills         string
	ReferralBonus  int
	RecruiterEmail string
	PostedDate     models.Date
}

// ApplyParams describes one application attempt.
type ApplyParams struct {
	JobID     int64
	UserEmail string
	// ReferralFee is debited when the job carries a referral bonus.
	ReferralFee int
	Date        models.Date
	AIScore     int
}

// UserStore captures persistence operations for accounts.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) error
	FindByEmail(ctx context.Context, email string) (models.User, error)
	// SaveResume stores resume text and credits reward tokens in one statement.
	SaveResume(ctx context.Context, email, text string, reward int) error
}

// JobStore captures persistence operations for the job catalog.
type JobStore interface {
	CreateJob(ctx context.Context, job NewJob) (models.Job, error)
	// ListJobs returns jobs newest first, filtered by a case-insensitive
	// substring of title or company when search is non-empty.
	ListJobs(ctx context.Context, search string) ([]models.Job, error)
}

// ApplicationStore records applications against the token balance.
type ApplicationStore interface {
	// Apply debits the user and records the application atomically.
	Apply(ctx context.Context, params ApplyParams) (models.Application, error)
}

// Store is everything the HTTP layer needs.
type Store interface {
	UserStore
	JobStore
	ApplicationStore
}
