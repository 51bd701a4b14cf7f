package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BreakdownEntry is one (category, signed amount) pair of a snapshot.
type BreakdownEntry struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// SnapshotCreate is a DTO for recording a snapshot.
type SnapshotCreate struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	Date             time.Time
	TotalAssets      decimal.Decimal
	TotalLiabilities decimal.Decimal
	NetWorth         decimal.Decimal
	Breakdown        []BreakdownEntry
	CreatedAt        time.Time
}

// SnapshotRead is a read-optimized DTO for snapshot history.
type SnapshotRead struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	Date             time.Time
	TotalAssets      decimal.Decimal
	TotalLiabilities decimal.Decimal
	NetWorth         decimal.Decimal
	Breakdown        []BreakdownEntry
	CreatedAt        time.Time
}
