package user

import (
	"fmt"
	"strings"
	"time"

	"github.com/amirasaad/networth/pkg/domain"
	"github.com/amirasaad/networth/pkg/utils"
	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when a user cannot be found in the repository.
	ErrUserNotFound = fmt.Errorf("%w: user not found", domain.ErrNotFound)
	// ErrUserUnauthorized is returned for unknown emails and wrong passwords alike.
	ErrUserUnauthorized = fmt.Errorf("%w: invalid credentials", domain.ErrUnauthorized)
	// ErrEmailTaken is returned when registering an email that already exists.
	ErrEmailTaken = fmt.Errorf("%w: email already registered", domain.ErrConflict)
	// ErrInvalidEmail is returned for a malformed email address.
	ErrInvalidEmail = fmt.Errorf("%w: invalid email address", domain.ErrValidation)
	// ErrWeakPassword is returned for passwords outside 6..72 bytes.
	ErrWeakPassword = fmt.Errorf("%w: password must be 6 to 72 characters", domain.ErrValidation)
)

// User is a registered identity. Email is stored lower-cased and is unique.
type User struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Password    string    `json:"-"`
	DisplayName string    `json:"displayName,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewUser validates the input and hashes password.
func NewUser(email, password, displayName string) (*User, error) {
	email, ok := utils.NormalizeEmail(email)
	if !ok {
		return nil, ErrInvalidEmail
	}
	if len(password) < 6 || len(password) > 72 {
		return nil, ErrWeakPassword
	}
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &User{
		ID:          uuid.New(),
		Email:       email,
		Password:    hashed,
		DisplayName: strings.TrimSpace(displayName),
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
