package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"user_id" db:"user_id"`           // Primary key
	Username     string    `json:"username" db:"username"`         // Unique username
	Email        string    `json:"email" db:"email"`               // Unique email
	PasswordHash string    `json:"-" db:"password_hash"`           // Hashed password, never serialized
	CreatedAt    time.Time `json:"created_at" db:"created_at"`     // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`     // Last update timestamp
}

// UserPublic is the externally visible view of a user.
type UserPublic struct {
	UserID   uuid.UUID `json:"id"`       // User identifier
	Username string    `json:"username"` // Username
	Email    string    `json:"email"`    // Email
}

// Public returns the externally visible view of the user.
func (u *UserDB) Public() UserPublic {
	return UserPublic{
		UserID:   u.UserID,
		Username: u.Username,
		Email:    u.Email,
	}
}
