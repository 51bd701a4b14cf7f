package snapshot

import (
	"time"

	"github.com/amirasaad/networth/pkg/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Snapshot represents a snapshot row. The breakdown is stored as a JSON document.
// Totals are wider than account amounts since they sum many decimal(20,2) values.
type Snapshot struct {
	ID               uuid.UUID            `gorm:"column:id;type:uuid;primaryKey"`
	UserID           uuid.UUID            `gorm:"column:user_id;type:uuid;not null;index"`
	Date             time.Time            `gorm:"column:date;not null;index"`
	TotalAssets      decimal.Decimal      `gorm:"column:total_assets;type:decimal(24,2);not null"`
	TotalLiabilities decimal.Decimal      `gorm:"column:total_liabilities;type:decimal(24,2);not null"`
	NetWorth         decimal.Decimal      `gorm:"column:net_worth;type:decimal(24,2);not null"`
	Breakdown        []dto.BreakdownEntry `gorm:"column:breakdown;type:text;serializer:json"`
	CreatedAt        time.Time            `gorm:"column:created_at"`
}

func (Snapshot) TableName() string { return "snapshots" }
