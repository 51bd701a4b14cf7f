// Package category holds the static catalog of asset and liability categories.
package category

import (
	"fmt"

	"github.com/amirasaad/networth/pkg/domain"
)

// Kind tells an asset apart from a liability.
type Kind string

const (
	KindAsset     Kind = "asset"
	KindLiability Kind = "liability"
)

// Key identifies a category. Keys are unique across both kinds.
type Key string

// Asset categories.
const (
	Cash       Key = "cash"
	Deposit    Key = "deposit"
	Fund       Key = "fund"
	Stock      Key = "stock"
	Bond       Key = "bond"
	Insurance  Key = "insurance"
	RealEstate Key = "realestate"
	Vehicle    Key = "vehicle"
	Gold       Key = "gold"
	Crypto     Key = "crypto"
	OtherAsset Key = "other_asset"
)

// Liability categories.
const (
	Mortgage       Key = "mortgage"
	CarLoan        Key = "car_loan"
	CreditCard     Key = "credit_card"
	ConsumerLoan   Key = "consumer_loan"
	EducationLoan  Key = "education_loan"
	OtherLiability Key = "other_liability"
)

// All is the filter sentinel that matches every category.
const All = "all"

var (
	ErrInvalidKind     = fmt.Errorf("%w: kind must be asset or liability", domain.ErrValidation)
	ErrInvalidCategory = fmt.Errorf("%w: unknown category", domain.ErrValidation)
)

// Descriptor is the display metadata attached to a category.
type Descriptor struct {
	Key   Key    `json:"key"`
	Kind  Kind   `json:"kind"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

var assets = []Descriptor{
	{Key: Cash, Kind: KindAsset, Label: "Cash", Icon: "💵", Color: "#10B981"},
	{Key: Deposit, Kind: KindAsset, Label: "Deposit", Icon: "🏦", Color: "#3B82F6"},
	{Key: Fund, Kind: KindAsset, Label: "Fund", Icon: "📈", Color: "#8B5CF6"},
	{Key: Stock, Kind: KindAsset, Label: "Stock", Icon: "📊", Color: "#F59E0B"},
	{Key: Bond, Kind: KindAsset, Label: "Bond", Icon: "📄", Color: "#6366F1"},
	{Key: Insurance, Kind: KindAsset, Label: "Insurance", Icon: "🛡️", Color: "#14B8A6"},
	{Key: RealEstate, Kind: KindAsset, Label: "Real estate", Icon: "🏠", Color: "#EC4899"},
	{Key: Vehicle, Kind: KindAsset, Label: "Vehicle", Icon: "🚗", Color: "#F97316"},
	{Key: Gold, Kind: KindAsset, Label: "Gold", Icon: "🪙", Color: "#EAB308"},
	{Key: Crypto, Kind: KindAsset, Label: "Crypto", Icon: "₿", Color: "#A855F7"},
	{Key: OtherAsset, Kind: KindAsset, Label: "Other asset", Icon: "📦", Color: "#64748B"},
}

var liabilities = []Descriptor{
	{Key: Mortgage, Kind: KindLiability, Label: "Mortgage", Icon: "🏠", Color: "#EF4444"},
	{Key: CarLoan, Kind: KindLiability, Label: "Car loan", Icon: "🚗", Color: "#F97316"},
	{Key: CreditCard, Kind: KindLiability, Label: "Credit card", Icon: "💳", Color: "#EC4899"},
	{Key: ConsumerLoan, Kind: KindLiability, Label: "Consumer loan", Icon: "🛒", Color: "#8B5CF6"},
	{Key: EducationLoan, Kind: KindLiability, Label: "Education loan", Icon: "🎓", Color: "#3B82F6"},
	{Key: OtherLiability, Kind: KindLiability, Label: "Other liability", Icon: "📋", Color: "#64748B"},
}

var index = func() map[Key]Descriptor {
	m := make(map[Key]Descriptor, len(assets)+len(liabilities))
	for _, d := range assets {
		m[d.Key] = d
	}
	for _, d := range liabilities {
		m[d.Key] = d
	}
	return m
}()

// Assets returns the asset categories in display order.
func Assets() []Descriptor {
	return append([]Descriptor(nil), assets...)
}

// Liabilities returns the liability categories in display order.
func Liabilities() []Descriptor {
	return append([]Descriptor(nil), liabilities...)
}

// Of returns the categories of the given kind, or nil for an unknown kind.
func Of(kind Kind) []Descriptor {
	switch kind {
	case KindAsset:
		return Assets()
	case KindLiability:
		return Liabilities()
	}
	return nil
}

// Lookup returns the descriptor for key.
func Lookup(key Key) (Descriptor, bool) {
	d, ok := index[key]
	return d, ok
}

// IsValid reports whether key is a category of the given kind.
func IsValid(kind Kind, key Key) bool {
	d, ok := index[key]
	return ok && d.Kind == kind
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k == KindAsset || k == KindLiability
}

// ParseKind converts s into a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.Valid() {
		return "", ErrInvalidKind
	}
	return k, nil
}

func (k Kind) String() string { return string(k) }

func (k Key) String() string { return string(k) }
