package account

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Asset represents an asset row. Column tags are the persisted names.
type Asset struct {
	ID        uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"column:user_id;type:uuid;not null;index"`
	Name      string          `gorm:"column:name;not null;size:255"`
	Amount    decimal.Decimal `gorm:"column:amount;type:decimal(20,2);not null"`
	Category  string          `gorm:"column:category;not null;size:32"`
	Platform  string          `gorm:"column:platform;size:255"`
	Note      string          `gorm:"column:note"`
	Icon      string          `gorm:"column:icon;size:32"`
	CreatedAt time.Time       `gorm:"column:created_at"`
	UpdatedAt time.Time       `gorm:"column:updated_at"`
}

func (Asset) TableName() string { return "assets" }

// Liability represents a liability row.
type Liability struct {
	ID           uuid.UUID           `gorm:"column:id;type:uuid;primaryKey"`
	UserID       uuid.UUID           `gorm:"column:user_id;type:uuid;not null;index"`
	Name         string              `gorm:"column:name;not null;size:255"`
	Amount       decimal.Decimal     `gorm:"column:amount;type:decimal(20,2);not null"`
	Category     string              `gorm:"column:category;not null;size:32"`
	InterestRate decimal.NullDecimal `gorm:"column:interest_rate;type:decimal(5,2)"`
	DueDate      *time.Time          `gorm:"column:due_date"`
	Note         string              `gorm:"column:note"`
	Icon         string              `gorm:"column:icon;size:32"`
	CreatedAt    time.Time           `gorm:"column:created_at"`
	UpdatedAt    time.Time           `gorm:"column:updated_at"`
}

func (Liability) TableName() string { return "liabilities" }
