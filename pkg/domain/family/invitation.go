package family

import (
	"fmt"
	"strings"
	"time"

	"github.com/amirasaad/networth/pkg/domain"
	"github.com/amirasaad/networth/pkg/utils"
	"github.com/google/uuid"
)

// Status is the lifecycle position of an invitation. Accepted and rejected are terminal.
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// DefaultInvitationTTL applies when no expiry policy is configured.
const DefaultInvitationTTL = 7 * 24 * time.Hour

var (
	ErrInvalidEmail           = fmt.Errorf("%w: invalid email address", domain.ErrValidation)
	ErrInvitationNotFound     = fmt.Errorf("%w: invitation not found", domain.ErrNotFound)
	ErrInvitationNotPending   = fmt.Errorf("%w: invitation is no longer pending", domain.ErrConflict)
	ErrInvitationExpired      = fmt.Errorf("%w: invitation has expired", domain.ErrConflict)
	ErrInvitationNotForCaller = fmt.Errorf("%w: invitation is addressed to another email", domain.ErrForbidden)
	ErrAlreadyMember          = fmt.Errorf("%w: user is already a family member", domain.ErrConflict)
	ErrAlreadyInvited         = fmt.Errorf("%w: a pending invitation already exists for this email", domain.ErrConflict)
)

// Invitation offers membership of a family to an email address.
// FamilyName is a read projection used when listing invitations for the invitee.
type Invitation struct {
	ID           uuid.UUID
	FamilyID     uuid.UUID
	InvitedBy    uuid.UUID
	InviteeEmail string
	InviteeID    *uuid.UUID
	Status       Status
	Role         Role
	CreatedAt    time.Time
	ExpiresAt    time.Time
	RespondedAt  *time.Time
	FamilyName   string
}

// NormalizeEmail trims and lower-cases an address after checking its syntax.
func NormalizeEmail(email string) (string, error) {
	normalized, ok := utils.NormalizeEmail(email)
	if !ok {
		return "", ErrInvalidEmail
	}
	return normalized, nil
}

// NewInvitation returns a pending invitation expiring ttl after now.
func NewInvitation(
	familyID, inviter uuid.UUID,
	email string,
	role Role,
	now time.Time,
	ttl time.Duration,
) (*Invitation, error) {
	email, err := NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}
	if ttl <= 0 {
		ttl = DefaultInvitationTTL
	}
	return &Invitation{
		ID:           uuid.New(),
		FamilyID:     familyID,
		InvitedBy:    inviter,
		InviteeEmail: email,
		Status:       StatusPending,
		Role:         role,
		CreatedAt:    now,
		ExpiresAt:    now.Add(ttl),
	}, nil
}

// Expired reports whether the invitation's expiry has passed.
func (i *Invitation) Expired(now time.Time) bool {
	return !now.Before(i.ExpiresAt)
}

// Active reports whether the invitation is pending and unexpired.
func (i *Invitation) Active(now time.Time) bool {
	return i.Status == StatusPending && !i.Expired(now)
}

// AddressedTo compares the invitee email case-insensitively.
func (i *Invitation) AddressedTo(email string) bool {
	return strings.EqualFold(i.InviteeEmail, strings.TrimSpace(email))
}

// Accept moves a pending, unexpired invitation to accepted and binds the invitee.
func (i *Invitation) Accept(userID uuid.UUID, email string, now time.Time) error {
	if err := i.respondable(email); err != nil {
		return err
	}
	if i.Expired(now) {
		return ErrInvitationExpired
	}
	i.respond(StatusAccepted, userID, now)
	return nil
}

// Reject moves a pending invitation to rejected and binds the invitee.
// Expired invitations may still be rejected.
func (i *Invitation) Reject(userID uuid.UUID, email string, now time.Time) error {
	if err := i.respondable(email); err != nil {
		return err
	}
	i.respond(StatusRejected, userID, now)
	return nil
}

func (i *Invitation) respondable(email string) error {
	if i.Status != StatusPending {
		return ErrInvitationNotPending
	}
	if !i.AddressedTo(email) {
		return ErrInvitationNotForCaller
	}
	return nil
}

func (i *Invitation) respond(status Status, userID uuid.UUID, now time.Time) {
	id := userID
	at := now
	i.Status = status
	i.InviteeID = &id
	i.RespondedAt = &at
}

// ActiveOnly keeps pending invitations that have not expired.
func ActiveOnly(invs []*Invitation, now time.Time) []*Invitation {
	out := make([]*Invitation, 0, len(invs))
	for _, inv := range invs {
		if inv.Active(now) {
			out = append(out, inv)
		}
	}
	return out
}
