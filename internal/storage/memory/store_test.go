package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongminglow/skillbit-be/internal/models"
	"github.com/hongminglow/skillbit-be/internal/storage"
)

func TestListJobsOrderAndFilter(t *testing.T) {
	s := New()
	ctx := context.Background()
	for _, j := range []storage.NewJob{
		{Title: "Go Developer", Company: "Acme"},
		{Title: "Designer", Company: "GoodCo"},
		{Title: "Accountant", Company: "Ledgers"},
	} {
		_, err := s.CreateJob(ctx, j)
		require.NoError(t, err)
	}

	all, err := s.ListJobs(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int64{3, 2, 1}, []int64{all[0].ID, all[1].ID, all[2].ID})

	hits, err := s.ListJobs(ctx, "GO")
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, "Designer", hits[0].Title)
	assert.Equal(t, "Go Developer", hits[1].Title)
}

func TestApplyConcurrentDebit(t *testing.T) {
	s := New()
	ctx := context.Background()
	require.NoError(t, s.CreateUser(ctx, models.User{Email: "a@example.com", Tokens: 6}))
	job, err := s.CreateJob(ctx, storage.NewJob{Title: "Referral", ReferralBonus: 100})
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.Apply(ctx, storage.ApplyParams{JobID: job.ID, UserEmail: "a@example.com", ReferralFee: 6, AIScore: 80})
		}(i)
	}
	wg.Wait()

	failures := 0
	for _, err := range errs {
		if err != nil {
			assert.ErrorIs(t, err, storage.ErrInsufficientCredits)
			failures++
		}
	}
	assert.Equal(t, 1, failures)
	user, err := s.FindByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, 0, user.Tokens)
	assert.Len(t, s.Applications("a@example.com"), 1)
}
