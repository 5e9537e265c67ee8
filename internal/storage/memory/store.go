// Package memory is an in-process storage.Store used by tests and local tooling.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/hongminglow/skillbit-be/internal/credits"
	"github.com/hongminglow/skillbit-be/internal/models"
	"github.com/hongminglow/skillbit-be/internal/storage"
)

var _ storage.Store = (*Store)(nil)

// Store keeps users, jobs and applications in memory behind a single mutex.
type Store struct {
	mu           sync.Mutex
	users        map[string]models.User
	jobs         []models.Job
	applications []models.Application
}

// New returns an empty Store.
func New() *Store {
	return &Store{users: make(map[string]models.User)}
}

func (s *Store) CreateUser(_ context.Context, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.Email]; ok {
		return storage.ErrAlreadyExists
	}
	s.users[user.Email] = user
	return nil
}

func (s *Store) FindByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[email]
	if !ok {
		return models.User{}, storage.ErrUserNotFound
	}
	return user, nil
}

func (s *Store) SaveResume(_ context.Context, email, text string, reward int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[email]
	if !ok {
		return storage.ErrUserNotFound
	}
	user.ResumeText = &text
	user.Tokens += reward
	s.users[email] = user
	return nil
}

func (s *Store) CreateJob(_ context.Context, job storage.NewJob) (models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	created := models.Job{
		ID:             int64(len(s.jobs) + 1),
		Title:          job.Title,
		Company:        job.Company,
		Location:       job.Location,
		Salary:         job.Salary,
		Description:    job.Description,
		Experience:     job.Experience,
		Skills:         job.Skills,
		ReferralBonus:  job.ReferralBonus,
		RecruiterEmail: job.RecruiterEmail,
		PostedDate:     job.PostedDate,
	}
	s.jobs = append(s.jobs, created)
	return created, nil
}

func (s *Store) ListJobs(_ context.Context, search string) ([]models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	needle := strings.ToLower(search)
	out := []models.Job{}
	for i := len(s.jobs) - 1; i >= 0; i-- {
		job := s.jobs[i]
		if needle == "" ||
			strings.Contains(strings.ToLower(job.Title), needle) ||
			strings.Contains(strings.ToLower(job.Company), needle) {
			out = append(out, job)
		}
	}
	return out, nil
}

func (s *Store) Apply(_ context.Context, params storage.ApplyParams) (models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if params.JobID < 1 || params.JobID > int64(len(s.jobs)) {
		return models.Application{}, storage.ErrJobNotFound
	}
	job := s.jobs[params.JobID-1]
	cost := credits.ApplicationCost(job, params.ReferralFee)

	user, ok := s.users[params.UserEmail]
	if !ok {
		return models.Application{}, storage.ErrUserNotFound
	}
	if !credits.CanAfford(user.Tokens, cost) {
		return models.Application{}, storage.ErrInsufficientCredits
	}
	user.Tokens -= cost
	s.users[user.Email] = user

	app := models.Application{
		ID:        int64(len(s.applications) + 1),
		JobID:     job.ID,
		UserEmail: user.Email,
		JobTitle:  job.Title,
		Company:   job.Company,
		Status:    models.StatusReceived,
		Date:      params.Date,
		AIScore:   params.AIScore,
		Cost:      cost,
	}
	s.applications = append(s.applications, app)
	return app, nil
}

// Applications returns a copy of the ledger for one user.
func (s *Store) Applications(email string) []models.Application {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Application
	for _, app := range s.applications {
		if app.UserEmail == email {
			out = append(out, app)
		}
	}
	return out
}
