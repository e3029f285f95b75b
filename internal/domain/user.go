package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is the domain entity for a user account.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
