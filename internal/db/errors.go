package db

import (
	"fmt"

	"github.com/google/uuid"
)

// ErrDriveNotFound indicates the drive id does not exist. Shortlisting and
// gap analysis surface it before any scoring begins; the engine never
// substitutes defaults for a missing drive.
type ErrDriveNotFound struct {
	ID int64
}

func (e *ErrDriveNotFound) Error() string {
	return fmt.Sprintf("drive not found: %d", e.ID)
}

// ErrUserNotFound indicates the user id does not exist.
type ErrUserNotFound struct {
	ID uuid.UUID
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.ID)
}
