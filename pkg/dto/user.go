package dto

import (
	"time"

	"github.com/google/uuid"
)

// UserCreate represents the data needed to create a new user.
type UserCreate struct {
	ID          uuid.UUID
	Email       string
	Password    string // bcrypt hash
	DisplayName string
}

// UserUpdate represents the data that can be updated for a user.
type UserUpdate struct {
	DisplayName *string
	Password    *string
}

// UserRead represents a read-optimized view of a user.
type UserRead struct {
	ID             uuid.UUID
	Email          string
	HashedPassword string
	DisplayName    string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
