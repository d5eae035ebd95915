package db

import (
	"time"

	"github.com/google/uuid"
)

// User is a row in the users table. PasswordHash never leaves this package's
// callers in API responses.
type User struct {
	ID           uuid.UUID
	RollNo       string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	Branch       string
	CGPA         float64
	CreatedAt    time.Time
}
