package models

// Roles offered at signup. Other values are stored as given.
const (
	JobSeeker = "job-seeker"
	Recruiter = "recruiter"
)
