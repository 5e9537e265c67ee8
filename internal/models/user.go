package models

// User captures application-facing fields for a SkillBit account.
type User struct {
	Email        string  `json:"email"`
	PasswordHash string  `json:"-"`
	Role         string  `json:"role"`
	Name         string  `json:"name"`
	Tokens       int     `json:"tokens"`
	Company      string  `json:"company"`
	Designation  string  `json:"designation"`
	ResumeText   *string `json:"resume_text"`
}
