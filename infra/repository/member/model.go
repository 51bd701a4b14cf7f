package member

import (
	"time"

	"github.com/google/uuid"
)

// Member represents a family_members row. A user holds at most one
// membership per family.
type Member struct {
	ID       uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	FamilyID uuid.UUID `gorm:"column:family_id;type:uuid;not null;uniqueIndex:idx_family_member"`
	UserID   uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:idx_family_member;index"`
	Role     string    `gorm:"column:role;not null;size:16"`
	JoinedAt time.Time `gorm:"column:joined_at"`
}

func (Member) TableName() string { return "family_members" }
