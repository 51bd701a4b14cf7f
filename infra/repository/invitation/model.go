package invitation

import (
	"time"

	"github.com/google/uuid"
)

// Invitation represents a family_invitations row.
type Invitation struct {
	ID           uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	FamilyID     uuid.UUID  `gorm:"column:family_id;type:uuid;not null;index"`
	InvitedBy    uuid.UUID  `gorm:"column:invited_by;type:uuid;not null"`
	InviteeEmail string     `gorm:"column:invitee_email;not null;size:255;index"`
	InviteeID    *uuid.UUID `gorm:"column:invitee_id;type:uuid"`
	Status       string     `gorm:"column:status;not null;size:16;index"`
	Role         string     `gorm:"column:role;not null;size:16"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	ExpiresAt    time.Time  `gorm:"column:expires_at;not null"`
	RespondedAt  *time.Time `gorm:"column:responded_at"`
}

func (Invitation) TableName() string { return "family_invitations" }
