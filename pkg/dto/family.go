package dto

import (
	"time"

	"github.com/google/uuid"
)

// FamilyCreate is a DTO for inserting a family.
type FamilyCreate struct {
	ID        uuid.UUID
	Name      string
	CreatedBy uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FamilyRead is a read-optimized DTO for families.
type FamilyRead struct {
	ID        uuid.UUID
	Name      string
	CreatedBy uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MemberCreate is a DTO for inserting a membership.
type MemberCreate struct {
	ID       uuid.UUID
	FamilyID uuid.UUID
	UserID   uuid.UUID
	Role     string
	JoinedAt time.Time
}

// MemberRead is a read-optimized DTO for memberships.
type MemberRead struct {
	ID       uuid.UUID
	FamilyID uuid.UUID
	UserID   uuid.UUID
	Role     string
	JoinedAt time.Time
}

// InvitationCreate is a DTO for inserting an invitation.
type InvitationCreate struct {
	ID           uuid.UUID
	FamilyID     uuid.UUID
	InvitedBy    uuid.UUID
	InviteeEmail string
	Status       string
	Role         string
	CreatedAt    time.Time
	ExpiresAt    time.Time
}

// InvitationRead is a read-optimized DTO for invitations.
type InvitationRead struct {
	ID           uuid.UUID
	FamilyID     uuid.UUID
	InvitedBy    uuid.UUID
	InviteeEmail string
	InviteeID    *uuid.UUID
	Status       string
	Role         string
	CreatedAt    time.Time
	ExpiresAt    time.Time
	RespondedAt  *time.Time
}

// InvitationUpdate records an invitee's response.
type InvitationUpdate struct {
	Status      string
	InviteeID   uuid.UUID
	RespondedAt time.Time
}
