package dto

import (
	"time"

	"github.com/google/uuid"
)

// AddNoteRequest is the JSON body for POST /notes/add-note.
type AddNoteRequest struct {
	Title       string `json:"title" binding:"required,min=4"`
	Description string `json:"description" binding:"required,min=6"`
	Tag         string `json:"tag" binding:"omitempty,max=50"`
}

// UpdateNoteRequest is the JSON body for PUT /notes/update-note/:id.
// nil = leave as is, value = overwrite.
type UpdateNoteRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=4"`
	Description *string `json:"description" binding:"omitempty,min=6"`
	Tag         *string `json:"tag" binding:"omitempty,max=50"`
}

// NoteResponse is the public view of a note.
type NoteResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tag         string    `json:"tag"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
