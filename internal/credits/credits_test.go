package credits

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hongminglow/skillbit-be/internal/config"
	"github.com/hongminglow/skillbit-be/internal/models"
)

func TestApplicationCost(t *testing.T) {
	tests := []struct {
		name  string
		bonus int
		want  int
	}{
		{name: "no referral", bonus: 0, want: 0},
		{name: "small bonus", bonus: 1, want: 6},
		{name: "large bonus is still flat", bonus: 50000, want: 6},
		{name: "negative bonus is free", bonus: -5, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplicationCost(models.Job{ReferralBonus: tt.bonus}, 6)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanAfford(t *testing.T) {
	assert.True(t, CanAfford(0, 0))
	assert.True(t, CanAfford(6, 6))
	assert.False(t, CanAfford(5, 6))
}

func TestPolicyFromConfig(t *testing.T) {
	p := PolicyFromConfig(config.Defaults())
	assert.Equal(t, Policy{SignupGrant: 50, ReferralFee: 6, ResumeReward: 20}, p)
}
