package models

// StatusReceived is the state of every freshly created application.
const StatusReceived = "Received"

// Application links a user to a job. JobTitle and Company are a snapshot of the job at apply time.
type Application struct {
	ID        int64  `json:"id"`
	JobID     int64  `json:"job_id"`
	UserEmail string `json:"user_email"`
	JobTitle  string `json:"job_title"`
	Company   string `json:"company"`
	Status    string `json:"status"`
	Date      Date   `json:"date"`
	AIScore   int    `json:"ai_score"`
	// Cost is the number of tokens debited for this application; it is not persisted.
	Cost int `json:"-"`
}
