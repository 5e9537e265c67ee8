// Package scoring produces the suitability score attached to each application.
package scoring

import "math/rand"

const (
	MinScore = 70
	MaxScore = 95
)

// Scorer rates an applicant for a job.
type Scorer interface {
	Score() int
}

// RandomScorer is a placeholder that draws uniformly from [MinScore, MaxScore].
type RandomScorer struct{}

// Score returns a uniformly random integer in [MinScore, MaxScore].
func (RandomScorer) Score() int {
	return MinScore + rand.Intn(MaxScore-MinScore+1)
}

// Fixed always returns the same score. Useful in tests.
type Fixed int

func (f Fixed) Score() int { return int(f) }
