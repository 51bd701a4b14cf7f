package user

import (
	"time"

	"github.com/google/uuid"
)

// User represents a user row.
type User struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Email       string    `gorm:"column:email;not null;size:255;uniqueIndex"`
	Password    string    `gorm:"column:password;not null"`
	DisplayName string    `gorm:"column:display_name;size:255"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (User) TableName() string { return "users" }
