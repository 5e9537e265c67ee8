// Package credits holds the token economy rules: what signup grants, what an
// application costs and what a resume upload earns.
package credits

import (
	"github.com/hongminglow/skillbit-be/internal/config"
	"github.com/hongminglow/skillbit-be/internal/models"
)

// Policy is the set of token amounts in effect.
type Policy struct {
	SignupGrant  int
	ReferralFee  int
	ResumeReward int
}

// PolicyFromConfig builds a Policy from runtime configuration.
func PolicyFromConfig(cfg config.Config) Policy {
	return Policy{
		SignupGrant:  cfg.SignupTokens,
		ReferralFee:  cfg.ReferralApplyCost,
		ResumeReward: cfg.ResumeReward,
	}
}

// ApplicationCost is a flat fee for jobs with a referral bonus and free otherwise.
// The size of the bonus does not matter.
func ApplicationCost(job models.Job, referralFee int) int {
	if job.HasReferral() {
		return referralFee
	}
	return 0
}

// CanAfford reports whether balance covers cost.
func CanAfford(balance, cost int) bool {
	return balance >= cost
}
