package dto

import (
	"time"

	"github.com/google/uuid"
)

// RegisterRequest is the JSON body for POST /auth/create-user.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=4"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest is the JSON body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// UpdateUserRequest is the JSON body for PUT /auth/update-user/:id.
// Omitted fields are left untouched.
type UpdateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=4"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=6"`
}

// UserResponse is the public view of a user. The password hash is never serialized.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
