package dto

import (
	"errors"

	"github.com/hongminglow/skillbit-be/internal/models"
)

// SignupRequest requires email, password, role and name; company and designation default to "".
type SignupRequest struct {
	Email       *string `json:"email"`
	Password    *string `json:"password"`
	Role        *string `json:"role"`
	Name        *string `json:"name"`
	Company     string  `json:"company"`
	Designation string  `json:"designation"`
}

// Validate checks that every required field is present.
func (r SignupRequest) Validate() error {
	if r.Email == nil || r.Password == nil || r.Role == nil || r.Name == nil {
		return errors.New("email, password, role, and name are required")
	}
	return nil
}

type LoginRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// Validate checks that both credentials are present.
func (r LoginRequest) Validate() error {
	if r.Email == nil || r.Password == nil {
		return errors.New("email and password are required")
	}
	return nil
}

type LoginResponse struct {
	Status string      `json:"status"`
	User   models.User `json:"user"`
	Token  string      `json:"token,omitempty"`
}
