package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountRead is a read-optimized DTO for asset and liability rows.
type AccountRead struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Kind         string // asset or liability, selects the table
	Category     string
	Name         string
	Amount       decimal.Decimal
	Note         string
	Icon         string
	Platform     string           // assets only
	InterestRate *decimal.Decimal // liabilities only
	DueDate      *time.Time       // liabilities only
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AccountCreate is a DTO for inserting an asset or liability.
type AccountCreate struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Kind         string
	Category     string
	Name         string
	Amount       decimal.Decimal
	Note         string
	Icon         string
	Platform     string
	InterestRate *decimal.Decimal
	DueDate      *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AccountUpdate is a DTO for a partial update. Nil fields are left untouched.
type AccountUpdate struct {
	Name         *string
	Amount       *decimal.Decimal
	Category     *string
	Note         *string
	Icon         *string
	Platform     *string
	InterestRate *decimal.Decimal
	DueDate      *time.Time
	UpdatedAt    time.Time

	// Set the column to NULL. Liabilities only.
	ClearInterestRate bool
	ClearDueDate      bool
}
