package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/pradeepreddy0/CampusHireAI/internal/db"
)

// ErrEmailAlreadyExists indicates the email is already registered.
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials.
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrUnauthorized indicates a missing or invalid authenticated identity.
type ErrUnauthorized struct{}

func (e *ErrUnauthorized) Error() string {
	return "authentication required"
}

// ErrForbidden indicates the authenticated account may not act on the
// requested resource.
type ErrForbidden struct{}

func (e *ErrForbidden) Error() string {
	return "not allowed for this account"
}

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// HTTPStatus maps service errors to HTTP status codes.
func HTTPStatus(err error) int {
	var (
		emailExists  *ErrEmailAlreadyExists
		badCreds     *ErrInvalidCredentials
		unauthorized *ErrUnauthorized
		forbidden    *ErrForbidden
		validation   *ErrValidation
		noDrive      *db.ErrDriveNotFound
		noUser       *db.ErrUserNotFound
	)
	switch {
	case errors.As(err, &emailExists):
		return http.StatusConflict
	case errors.As(err, &badCreds), errors.As(err, &unauthorized):
		return http.StatusUnauthorized
	case errors.As(err, &forbidden):
		return http.StatusForbidden
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &noDrive), errors.As(err, &noUser):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
