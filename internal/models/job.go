package models

import (
	"time"
)

// DateLayout is the calendar-date wire format used for posted and application dates.
const DateLayout = "2006-01-02"

// Date is a calendar date without a time of day.
type Date struct {
	time.Time
}

// Today returns the current server-local calendar date.
func Today(now time.Time) Date {
	y, m, d := now.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, now.Location())}
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

// MarshalJSON renders the date as "YYYY-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON accepts the "YYYY-MM-DD" form written by MarshalJSON.
func (d *Date) UnmarshalJSON(b []byte) error {
	t, err := time.Parse(`"`+DateLayout+`"`, string(b))
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// Job is a posting in the catalog. Jobs are immutable once created.
type Job struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Company        string `json:"company"`
	Location       string `json:"location"`
	Salary         string `json:"salary"`
	Description    string `json:"description"`
	Experience     string `json:"experience"`
	Skills         string `json:"skills"`
	ReferralBonus  int    `json:"referral_bonus"`
	RecruiterEmail string `json:"recruiter_email"`
	PostedDate     Date   `json:"posted_date"`
}

// HasReferral reports whether applying to the job carries a referral fee.
func (j Job) HasReferral() bool {
	return j.ReferralBonus > 0
}
