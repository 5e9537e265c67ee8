package respond

import (
	"encoding/json"
	"log"
	"net/http"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope is the standard API response wrapper used across handlers.
// Business outcomes are read from Status; the HTTP code only mirrors it.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Success writes {"status":"success"} with an optional message.
func Success(w http.ResponseWriter, message string) {
	JSON(w, http.StatusOK, Envelope{Status: StatusSuccess, Message: message})
}

// Error writes an error response with the shared envelope structure.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Envelope{Status: StatusError, Message: message})
}

// JSON writes any payload as JSON with the given status code.
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("respond: encode payload failed: %v", err)
	}
}
