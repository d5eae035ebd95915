// Package types provides type definitions for structured data used throughout the CampusHireAI system.
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// User roles. Admins manage drives and run shortlisting; students apply and
// upload resumes.
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// SignupRequest registers a new student or admin account.
type SignupRequest struct {
	RollNo   string  `json:"roll_no" validate:"required"`
	Name     string  `json:"name" validate:"required,min=1"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8"`
	Role     string  `json:"role" validate:"required,oneof=student admin"`
	Branch   string  `json:"branch,omitempty"`
	CGPA     float64 `json:"cgpa" validate:"gte=0,lte=10"`
}

// LoginRequest authenticates an existing account.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserProfile is the API-facing view of a user, without credentials.
type UserProfile struct {
	ID        uuid.UUID `json:"id"`
	RollNo    string    `json:"roll_no"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Branch    string    `json:"branch,omitempty"`
	CGPA      float64   `json:"cgpa"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenResponse is returned by signup and login.
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	Role        string    `json:"role"`
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"name"`
}

// Validate validates the SignupRequest using the validator.
func (r *SignupRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
