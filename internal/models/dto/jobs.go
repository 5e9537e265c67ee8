package dto

import "errors"

// JobPostRequest uses pointers so a missing field can be told apart from an empty one.
type JobPostRequest struct {
	Title          *string `json:"title"`
	Company        *string `json:"company"`
	Location       *string `json:"location"`
	Salary         *string `json:"salary"`
	Description    *string `json:"description"`
	Experience     *string `json:"experience"`
	Skills         *string `json:"skills"`
	ReferralBonus  *int    `json:"referral_bonus"`
	RecruiterEmail *string `json:"recruiter_email"`
}

// Validate checks that every field is present. Values themselves are not inspected.
func (r JobPostRequest) Validate() error {
	if r.Title == nil || r.Company == nil || r.Location == nil || r.Salary == nil ||
		r.Description == nil || r.Experience == nil || r.Skills == nil ||
		r.ReferralBonus == nil || r.RecruiterEmail == nil {
		return errors.New("title, company, location, salary, description, experience, skills, referral_bonus, and recruiter_email are required")
	}
	return nil
}

type ApplyResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	AIScore int    `json:"ai_score"`
}
