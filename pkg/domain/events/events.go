// Package events defines the domain events emitted after a write commits.
package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Event is implemented by every domain event.
type Event interface {
	Type() string
}

// Meta is embedded in every event.
type Meta struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	OccurredAt time.Time
}

// NewMeta stamps an event raised by userID.
func NewMeta(userID uuid.UUID) Meta {
	return Meta{ID: uuid.New(), UserID: userID, OccurredAt: time.Now().UTC()}
}

// AccountChanged covers add, update and delete. Amount is zero for deletes.
type AccountChanged struct {
	Meta
	Kind      EventType
	AccountID uuid.UUID
	Category  string
	Amount    decimal.Decimal
}

func (e AccountChanged) Type() string { return e.Kind.String() }

// LedgerCleared is raised when a user wipes every account and snapshot.
type LedgerCleared struct {
	Meta
}

func (LedgerCleared) Type() string { return EventTypeLedgerCleared.String() }

// SnapshotTaken carries the recorded totals.
type SnapshotTaken struct {
	Meta
	SnapshotID uuid.UUID
	NetWorth   decimal.Decimal
}

func (SnapshotTaken) Type() string { return EventTypeSnapshotTaken.String() }

// FamilyChanged covers family create, update and delete.
type FamilyChanged struct {
	Meta
	Kind     EventType
	FamilyID uuid.UUID
	Name     string
}

func (e FamilyChanged) Type() string { return e.Kind.String() }

// MembershipChanged covers removals, role changes and leaves.
type MembershipChanged struct {
	Meta
	Kind     EventType
	FamilyID uuid.UUID
	MemberID uuid.UUID
	Role     string
}

func (e MembershipChanged) Type() string { return e.Kind.String() }

// InvitationChanged covers every invitation transition.
type InvitationChanged struct {
	Meta
	Kind         EventType
	InvitationID uuid.UUID
	FamilyID     uuid.UUID
	InviteeEmail string
}

func (e InvitationChanged) Type() string { return e.Kind.String() }

// UserRegistered is raised after sign-up.
type UserRegistered struct {
	Meta
	Email string
}

func (UserRegistered) Type() string { return EventTypeUserRegistered.String() }
