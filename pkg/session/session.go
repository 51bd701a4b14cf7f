// Package session carries the authenticated caller through a request.
package session

import (
	"fmt"

	"github.com/amirasaad/networth/pkg/domain"
	"github.com/google/uuid"
)

var ErrNoSession = fmt.Errorf("%w: no authenticated session", domain.ErrUnauthorized)

// Session identifies the signed-in user. It is established from a verified
// token at the start of each request and handed to services explicitly.
type Session struct {
	UserID uuid.UUID
	Email  string
}

// New returns a session, rejecting an empty identity.
func New(userID uuid.UUID, email string) (Session, error) {
	if userID == uuid.Nil || email == "" {
		return Session{}, ErrNoSession
	}
	return Session{UserID: userID, Email: email}, nil
}

// Valid reports whether s identifies a user.
func (s Session) Valid() bool {
	return s.UserID != uuid.Nil && s.Email != ""
}
