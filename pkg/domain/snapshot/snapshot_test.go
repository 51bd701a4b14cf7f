package snapshot_test

import (
	"testing"
	"time"

	"github.com/amirasaad/networth/pkg/domain/account"
	"github.com/amirasaad/networth/pkg/domain/category"
	"github.com/amirasaad/networth/pkg/domain/snapshot"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func acc(t *testing.T, userID uuid.UUID, kind category.Kind, key category.Key, amount int64) *account.Account {
	t.Helper()
	a, err := account.New().WithUserID(userID).WithKind(kind).WithCategory(key).
		WithName(string(key)).WithAmount(decimal.NewFromInt(amount)).Build()
	require.NoError(t, err)
	return a
}

func TestCapture(t *testing.T) {
	t.Parallel()
	userID := uuid.New()
	l := account.NewLedger(
		acc(t, userID, category.KindLiability, category.Mortgage, 300),
		acc(t, userID, category.KindAsset, category.RealEstate, 1000),
		acc(t, userID, category.KindAsset, category.Cash, 50),
	)
	now := time.Date(2024, 5, 17, 22, 30, 0, 0, time.FixedZone("X", -3*3600))

	s, err := snapshot.Capture(userID, l, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 18, 0, 0, 0, 0, time.UTC), s.Date)
	assert.True(t, s.TotalAssets.Equal(decimal.NewFromInt(1050)))
	assert.True(t, s.TotalLiabilities.Equal(decimal.NewFromInt(300)))
	assert.True(t, s.NetWorth.Equal(decimal.NewFromInt(750)))
	require.Len(t, s.Breakdown, 3)
	assert.Equal(t, category.RealEstate, s.Breakdown[0].Category)
	assert.Equal(t, category.Mortgage, s.Breakdown[2].Category)
	assert.True(t, s.Breakdown[2].Amount.Equal(decimal.NewFromInt(-300)))
}

func TestCapture_RequiresOwner(t *testing.T) {
	t.Parallel()
	_, err := snapshot.Capture(uuid.Nil, account.NewLedger(), time.Now())
	assert.ErrorIs(t, err, snapshot.ErrMissingOwner)
}

func TestCapture_TwiceGivesDistinctRecords(t *testing.T) {
	t.Parallel()
	userID := uuid.New()
	l := account.NewLedger(acc(t, userID, category.KindAsset, category.Cash, 10))
	now := time.Now()
	a, err := snapshot.Capture(userID, l, now)
	require.NoError(t, err)
	b, err := snapshot.Capture(userID, l, now)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, a.Date, b.Date)
	assert.True(t, a.NetWorth.Equal(b.NetWorth))
}

func snap(day int, net int64) *snapshot.Snapshot {
	d := time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC)
	return &snapshot.Snapshot{
		ID:          uuid.New(),
		Date:        d,
		CreatedAt:   d,
		TotalAssets: decimal.NewFromInt(net),
		NetWorth:    decimal.NewFromInt(net),
	}
}

func TestBuildTrend(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		snaps      []*snapshot.Snapshot
		sufficient bool
		dates      []string
		change     int64
	}{
		{"empty", nil, false, nil, 0},
		{"single", []*snapshot.Snapshot{snap(3, 10)}, false, nil, 0},
		{"unsorted input", []*snapshot.Snapshot{snap(9, 40), snap(2, 10), snap(5, 25)}, true,
			[]string{"2024-01-02", "2024-01-05", "2024-01-09"}, 30},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			tr := snapshot.BuildTrend(tc.snaps)
			assert.Equal(t, tc.sufficient, tr.Sufficient)
			var dates []string
			for _, p := range tr.Points {
				dates = append(dates, p.Date)
			}
			assert.Equal(t, tc.dates, dates)
			assert.True(t, tr.Change.Equal(decimal.NewFromInt(tc.change)))
		})
	}
}

func TestBuildTrend_DoesNotReorderInput(t *testing.T) {
	t.Parallel()
	in := []*snapshot.Snapshot{snap(9, 1), snap(1, 2)}
	first := in[0]
	snapshot.BuildTrend(in)
	assert.Same(t, first, in[0])
}

func TestSortByDate(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC) }
	late := &snapshot.Snapshot{Date: day(5), CreatedAt: day(5).Add(2 * time.Hour)}
	early := &snapshot.Snapshot{Date: day(5), CreatedAt: day(5).Add(time.Hour)}
	first := &snapshot.Snapshot{Date: day(1), CreatedAt: day(9)}
	last := &snapshot.Snapshot{Date: day(7), CreatedAt: day(7)}

	snaps := []*snapshot.Snapshot{last, late, first, early}
	snapshot.SortByDate(snaps)

	assert.Equal(t, []*snapshot.Snapshot{first, early, late, last}, snaps)
}
