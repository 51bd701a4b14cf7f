// Package snapshot models dated captures of a ledger's totals.
package snapshot

import (
	"fmt"
	"sort"
	"time"

	"github.com/amirasaad/networth/pkg/domain"
	"github.com/amirasaad/networth/pkg/domain/account"
	"github.com/amirasaad/networth/pkg/domain/category"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DateLayout is the day-granularity format used on the wire.
const DateLayout = "2006-01-02"

var ErrMissingOwner = fmt.Errorf("%w: snapshot owner is required", domain.ErrValidation)

// Entry is one account's contribution. Liability amounts are negative.
type Entry struct {
	Category category.Key    `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// Snapshot is immutable once recorded. NetWorth is stored alongside the totals
// so history can be charted without recomputation.
type Snapshot struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	Date             time.Time
	TotalAssets      decimal.Decimal
	TotalLiabilities decimal.Decimal
	NetWorth         decimal.Decimal
	Breakdown        []Entry
	CreatedAt        time.Time
}

// Day truncates t to midnight UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Capture builds a snapshot of l dated to the UTC day of now.
// The breakdown lists assets first, then liabilities, one entry per account.
func Capture(userID uuid.UUID, l *account.Ledger, now time.Time) (*Snapshot, error) {
	if userID == uuid.Nil {
		return nil, ErrMissingOwner
	}
	totals := l.Totals()
	breakdown := make([]Entry, 0, l.Len())
	for _, a := range l.Assets() {
		breakdown = append(breakdown, Entry{Category: a.Category, Amount: a.Signed()})
	}
	for _, a := range l.Liabilities() {
		breakdown = append(breakdown, Entry{Category: a.Category, Amount: a.Signed()})
	}
	return &Snapshot{
		ID:               uuid.New(),
		UserID:           userID,
		Date:             Day(now),
		TotalAssets:      totals.TotalAssets,
		TotalLiabilities: totals.TotalLiabilities,
		NetWorth:         totals.NetWorth,
		Breakdown:        breakdown,
		CreatedAt:        now.UTC(),
	}, nil
}

// SortByDate orders snapshots by date ascending, falling back to creation time
// for snapshots taken on the same day. The input slice is sorted in place.
func SortByDate(snaps []*Snapshot) {
	sort.SliceStable(snaps, func(i, j int) bool {
		if !snaps[i].Date.Equal(snaps[j].Date) {
			return snaps[i].Date.Before(snaps[j].Date)
		}
		return snaps[i].CreatedAt.Before(snaps[j].CreatedAt)
	})
}

// Point is one sample of a trend series.
type Point struct {
	Date             string          `json:"date"`
	NetWorth         decimal.Decimal `json:"netWorth"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
}

// Trend is the chartable history. Sufficient is false with fewer than two points,
// in which case Points is empty.
type Trend struct {
	Sufficient bool            `json:"sufficient"`
	Points     []Point         `json:"points"`
	Change     decimal.Decimal `json:"change"`
}

// MinTrendPoints is the smallest history that yields a trend.
const MinTrendPoints = 2

// BuildTrend sorts a copy of snaps and turns it into a series.
func BuildTrend(snaps []*Snapshot) Trend {
	if len(snaps) < MinTrendPoints {
		return Trend{Points: []Point{}}
	}
	sorted := append([]*Snapshot(nil), snaps...)
	SortByDate(sorted)
	points := make([]Point, 0, len(sorted))
	for _, s := range sorted {
		points = append(points, Point{
			Date:             s.Date.Format(DateLayout),
			NetWorth:         s.NetWorth,
			TotalAssets:      s.TotalAssets,
			TotalLiabilities: s.TotalLiabilities,
		})
	}
	first, last := sorted[0], sorted[len(sorted)-1]
	return Trend{
		Sufficient: true,
		Points:     points,
		Change:     last.NetWorth.Sub(first.NetWorth),
	}
}
