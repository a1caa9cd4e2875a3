package models

import (
	"time"

	"github.com/google/uuid"
)

// ImageDB represents an image metadata record in the database.
// UploadedBy is a weak reference to the owning user: a bare identifier,
// resolved through the users table only when owner details are needed.
type ImageDB struct {
	ImageID    uuid.UUID  `json:"image_id" db:"image_id"`       // Primary key
	Title      string     `json:"title" db:"title"`             // Free-text title
	ImageURL   string     `json:"image_url" db:"image_url"`     // Public URL, set after remote upload
	PublicID   string     `json:"public_id" db:"public_id"`     // Remote object id, handle for deletion
	UploadedBy *uuid.UUID `json:"uploaded_by" db:"uploaded_by"` // Owning user id, nullable
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`   // Creation timestamp
	UpdatedAt  time.Time  `json:"updated_at" db:"updated_at"`   // Last update timestamp
}

// ImageWithOwner is an image record annotated with its owner's public identity.
// Owner fields are nullable: the uploader may have been deleted since upload.
type ImageWithOwner struct {
	ImageDB
	OwnerUsername *string `json:"owner_username" db:"owner_username"`
	OwnerEmail    *string `json:"owner_email" db:"owner_email"`
}
