package account

import (
	"github.com/amirasaad/networth/pkg/domain/category"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	hundred      = decimal.NewFromInt(100)
	neutralRatio = decimal.NewFromInt(50)
)

// Totals is the aggregate view of a ledger. NetWorth is always
// TotalAssets minus TotalLiabilities.
type Totals struct {
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	NetWorth         decimal.Decimal `json:"netWorth"`
}

// Slice is one category's share of an allocation.
type Slice struct {
	category.Descriptor
	Total   decimal.Decimal `json:"total"`
	Percent decimal.Decimal `json:"percent"`
}

// Ledger holds one user's assets and liabilities in insertion order.
// It is not safe for concurrent use.
type Ledger struct {
	assets      []*Account
	liabilities []*Account
}

// NewLedger sorts accounts into assets and liabilities.
func NewLedger(accounts ...*Account) *Ledger {
	l := &Ledger{}
	for _, a := range accounts {
		l.Add(a)
	}
	return l
}

func (l *Ledger) list(kind category.Kind) *[]*Account {
	if kind == category.KindLiability {
		return &l.liabilities
	}
	return &l.assets
}

// Add appends a to the collection of its kind.
func (l *Ledger) Add(a *Account) {
	s := l.list(a.Kind)
	*s = append(*s, a)
}

// Find returns the account with id.
func (l *Ledger) Find(id uuid.UUID) (*Account, bool) {
	for _, s := range [][]*Account{l.assets, l.liabilities} {
		for _, a := range s {
			if a.ID == id {
				return a, true
			}
		}
	}
	return nil, false
}

// Replace swaps the stored account that shares a's id. It reports false if none exists.
func (l *Ledger) Replace(a *Account) bool {
	s := *l.list(a.Kind)
	for i := range s {
		if s[i].ID == a.ID {
			s[i] = a
			return true
		}
	}
	return false
}

// Remove deletes the account with id. Removing an unknown id is a no-op.
func (l *Ledger) Remove(id uuid.UUID) bool {
	for _, kind := range []category.Kind{category.KindAsset, category.KindLiability} {
		s := l.list(kind)
		for i, a := range *s {
			if a.ID == id {
				*s = append((*s)[:i:i], (*s)[i+1:]...)
				return true
			}
		}
	}
	return false
}

// Clear empties the ledger.
func (l *Ledger) Clear() {
	l.assets = nil
	l.liabilities = nil
}

// Assets returns a copy of the asset accounts.
func (l *Ledger) Assets() []*Account { return append([]*Account(nil), l.assets...) }

// Liabilities returns a copy of the liability accounts.
func (l *Ledger) Liabilities() []*Account { return append([]*Account(nil), l.liabilities...) }

// Len is the number of accounts of both kinds.
func (l *Ledger) Len() int { return len(l.assets) + len(l.liabilities) }

// Totals sums both collections.
func (l *Ledger) Totals() Totals {
	assets := sum(l.assets)
	liabilities := sum(l.liabilities)
	return Totals{
		TotalAssets:      assets,
		TotalLiabilities: liabilities,
		NetWorth:         assets.Sub(liabilities),
	}
}

// AssetRatio is the percentage of assets in assets plus liabilities.
// It is 50 when there are no assets.
func (l *Ledger) AssetRatio() decimal.Decimal {
	t := l.Totals()
	if !t.TotalAssets.IsPositive() {
		return neutralRatio
	}
	return t.TotalAssets.Div(t.TotalAssets.Add(t.TotalLiabilities)).Mul(hundred)
}

// Filter returns the accounts in the given category, or every account for category.All.
// Assets come before liabilities.
func (l *Ledger) Filter(key string) []*Account {
	out := make([]*Account, 0, l.Len())
	for _, s := range [][]*Account{l.assets, l.liabilities} {
		for _, a := range s {
			if key == category.All || string(a.Category) == key {
				out = append(out, a)
			}
		}
	}
	return out
}

// UsedCategories lists the catalog entries that have at least one account, in catalog order.
func (l *Ledger) UsedCategories() []category.Descriptor {
	used := make(map[category.Key]bool, l.Len())
	for _, s := range [][]*Account{l.assets, l.liabilities} {
		for _, a := range s {
			used[a.Category] = true
		}
	}
	out := make([]category.Descriptor, 0, len(used))
	for _, d := range append(category.Assets(), category.Liabilities()...) {
		if used[d.Key] {
			out = append(out, d)
		}
	}
	return out
}

// Allocation rolls up the accounts of one kind per category. Categories with
// a zero total are omitted and order follows the catalog.
func (l *Ledger) Allocation(kind category.Kind) []Slice {
	items := *l.list(kind)
	totals := make(map[category.Key]decimal.Decimal, len(items))
	for _, a := range items {
		totals[a.Category] = totals[a.Category].Add(a.Amount)
	}
	grand := sum(items)
	var out []Slice
	for _, d := range category.Of(kind) {
		t, ok := totals[d.Key]
		if !ok || !t.IsPositive() {
			continue
		}
		out = append(out, Slice{
			Descriptor: d,
			Total:      t,
			Percent:    t.Div(grand).Mul(hundred).Round(2),
		})
	}
	return out
}

func sum(accounts []*Account) decimal.Decimal {
	total := decimal.Zero
	for _, a := range accounts {
		total = total.Add(a.Amount)
	}
	return total
}
