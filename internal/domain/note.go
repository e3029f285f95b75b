package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultTag is assigned to notes created without an explicit tag.
const DefaultTag = "General"

// Note is the domain entity for a note. UserID references the owning
// user but is not a foreign key: deleting a user leaves their notes behind.
type Note struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Description string
	Tag         string

	CreatedAt time.Time
	UpdatedAt time.Time
}
