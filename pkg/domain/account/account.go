package account

import (
	"fmt"
	"strings"
	"time"

	"github.com/amirasaad/networth/pkg/domain"
	"github.com/amirasaad/networth/pkg/domain/category"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrEmptyName is returned when an account name is blank.
	ErrEmptyName = fmt.Errorf("%w: account name must not be empty", domain.ErrValidation)
	// ErrAmountMustBePositive is returned when a new account has a zero or negative amount.
	ErrAmountMustBePositive = fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	// ErrNegativeAmount is returned when an update would store a negative amount.
	ErrNegativeAmount = fmt.Errorf("%w: amount must not be negative", domain.ErrValidation)
	// ErrInvalidAmountScale is returned for amounts or rates with more than two decimal places.
	ErrInvalidAmountScale = fmt.Errorf("%w: at most two decimal places are allowed", domain.ErrValidation)
	// ErrAmountTooLarge is returned for amounts with more than 18 integer digits.
	ErrAmountTooLarge = fmt.Errorf("%w: amount is too large", domain.ErrValidation)
	// ErrEmptyPatch is returned when an update changes nothing.
	ErrEmptyPatch = fmt.Errorf("%w: no fields to update", domain.ErrValidation)
	// ErrInterestRateOutOfRange is returned for an interest rate outside 0..100.
	ErrInterestRateOutOfRange = fmt.Errorf("%w: interest rate must be between 0 and 100", domain.ErrValidation)
	// ErrFieldNotApplicable is returned when an asset-only or liability-only field is set on the other kind.
	ErrFieldNotApplicable = fmt.Errorf("%w: field does not apply to this account kind", domain.ErrValidation)
	// ErrMissingOwner is returned when an account has no owning user.
	ErrMissingOwner = fmt.Errorf("%w: account owner is required", domain.ErrValidation)
	// ErrAccountNotFound is returned when the account is absent from the owner's ledger.
	ErrAccountNotFound = fmt.Errorf("%w: account not found", domain.ErrNotFound)
)

const (
	DefaultAssetIcon     = "💰"
	DefaultLiabilityIcon = "💳"
)

// Stored amounts are decimal(20,2); rates are decimal(5,2).
const scale = 2

var (
	maxInterestRate = decimal.NewFromInt(100)
	maxAmount       = decimal.New(1, 18)
)

// Account is an asset or liability owned by a single user.
//
// Amount is always a non-negative magnitude. Direction comes from Kind.
// Platform applies to assets only; InterestRate and DueDate to liabilities only.
type Account struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Kind         category.Kind
	Category     category.Key
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

// IsAsset reports whether the account counts toward total assets.
func (a *Account) IsAsset() bool { return a.Kind == category.KindAsset }

// Signed returns the amount with liabilities negated.
func (a *Account) Signed() decimal.Decimal {
	if a.Kind == category.KindLiability {
		return a.Amount.Neg()
	}
	return a.Amount
}

// DefaultIcon is the icon used when none is supplied.
func DefaultIcon(kind category.Kind) string {
	if kind == category.KindLiability {
		return DefaultLiabilityIcon
	}
	return DefaultAssetIcon
}

// Builder constructs new accounts and checks every invariant in Build.
type Builder struct {
	id           uuid.UUID
	userID       uuid.UUID
	kind         category.Kind
	cat          category.Key
	name         string
	amount       decimal.Decimal
	note         string
	icon         string
	platform     string
	interestRate *decimal.Decimal
	dueDate      *time.Time
	now          time.Time
}

// New returns a Builder with a fresh identifier and the current time.
func New() *Builder {
	return &Builder{id: uuid.New(), now: time.Now().UTC()}
}

func (b *Builder) WithID(id uuid.UUID) *Builder {
	b.id = id
	return b
}

func (b *Builder) WithUserID(userID uuid.UUID) *Builder {
	b.userID = userID
	return b
}

func (b *Builder) WithKind(kind category.Kind) *Builder {
	b.kind = kind
	return b
}

func (b *Builder) WithCategory(key category.Key) *Builder {
	b.cat = key
	return b
}

func (b *Builder) WithName(name string) *Builder {
	b.name = name
	return b
}

func (b *Builder) WithAmount(amount decimal.Decimal) *Builder {
	b.amount = amount
	return b
}

func (b *Builder) WithNote(note string) *Builder {
	b.note = note
	return b
}

func (b *Builder) WithIcon(icon string) *Builder {
	b.icon = icon
	return b
}

// WithPlatform sets the institution label. Assets only.
func (b *Builder) WithPlatform(platform string) *Builder {
	b.platform = platform
	return b
}

// WithInterestRate sets the annual rate in percent. Liabilities only.
func (b *Builder) WithInterestRate(rate *decimal.Decimal) *Builder {
	b.interestRate = rate
	return b
}

// WithDueDate sets the due date. Liabilities only.
func (b *Builder) WithDueDate(due *time.Time) *Builder {
	b.dueDate = due
	return b
}

// WithNow overrides the creation timestamp.
func (b *Builder) WithNow(now time.Time) *Builder {
	b.now = now
	return b
}

// Build validates the collected fields and returns the account.
func (b *Builder) Build() (*Account, error) {
	if b.userID == uuid.Nil {
		return nil, ErrMissingOwner
	}
	if !b.kind.Valid() {
		return nil, category.ErrInvalidKind
	}
	name := strings.TrimSpace(b.name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if !b.amount.IsPositive() {
		return nil, ErrAmountMustBePositive
	}
	if err := checkAmount(b.amount); err != nil {
		return nil, err
	}
	if !category.IsValid(b.kind, b.cat) {
		return nil, category.ErrInvalidCategory
	}
	if err := checkKindFields(b.kind, b.platform != "", b.interestRate, b.dueDate != nil); err != nil {
		return nil, err
	}
	icon := b.icon
	if icon == "" {
		icon = DefaultIcon(b.kind)
	}
	return &Account{
		ID:           b.id,
		UserID:       b.userID,
		Kind:         b.kind,
		Category:     b.cat,
		Name:         name,
		Amount:       b.amount,
		Note:         b.note,
		Icon:         icon,
		Platform:     b.platform,
		InterestRate: b.interestRate,
		DueDate:      b.dueDate,
		CreatedAt:    b.now,
		UpdatedAt:    b.now,
	}, nil
}

// Patch lists the fields an update may change. Nil fields are left untouched.
// ClearInterestRate and ClearDueDate remove the value; they win over a value
// set in the same patch.
type Patch struct {
	Name         *string
	Amount       *decimal.Decimal
	Category     *category.Key
	Note         *string
	Icon         *string
	Platform     *string
	InterestRate *decimal.Decimal
	DueDate      *time.Time

	ClearInterestRate bool
	ClearDueDate      bool
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return p.Name == nil && p.Amount == nil && p.Category == nil && p.Note == nil &&
		p.Icon == nil && p.Platform == nil && p.InterestRate == nil && p.DueDate == nil &&
		!p.ClearInterestRate && !p.ClearDueDate
}

// Apply returns a copy of a with p merged in and UpdatedAt set to now.
// The receiver is not modified.
func (a *Account) Apply(p Patch, now time.Time) (*Account, error) {
	out := *a
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return nil, ErrEmptyName
		}
		out.Name = name
	}
	if p.Amount != nil {
		if p.Amount.IsNegative() {
			return nil, ErrNegativeAmount
		}
		if err := checkAmount(*p.Amount); err != nil {
			return nil, err
		}
		out.Amount = *p.Amount
	}
	if p.Category != nil {
		if !category.IsValid(a.Kind, *p.Category) {
			return nil, category.ErrInvalidCategory
		}
		out.Category = *p.Category
	}
	if err := checkKindFields(a.Kind, p.Platform != nil, p.InterestRate, p.DueDate != nil); err != nil {
		return nil, err
	}
	if a.Kind == category.KindAsset && (p.ClearInterestRate || p.ClearDueDate) {
		return nil, ErrFieldNotApplicable
	}
	if p.Note != nil {
		out.Note = *p.Note
	}
	if p.Icon != nil {
		out.Icon = *p.Icon
	}
	if p.Platform != nil {
		out.Platform = *p.Platform
	}
	if p.InterestRate != nil {
		r := *p.InterestRate
		out.InterestRate = &r
	}
	if p.DueDate != nil {
		d := *p.DueDate
		out.DueDate = &d
	}
	if p.ClearInterestRate {
		out.InterestRate = nil
	}
	if p.ClearDueDate {
		out.DueDate = nil
	}
	out.UpdatedAt = now
	return &out, nil
}

func checkKindFields(kind category.Kind, hasPlatform bool, rate *decimal.Decimal, hasDue bool) error {
	switch kind {
	case category.KindAsset:
		if rate != nil || hasDue {
			return ErrFieldNotApplicable
		}
	case category.KindLiability:
		if hasPlatform {
			return ErrFieldNotApplicable
		}
		if rate != nil && (rate.IsNegative() || rate.GreaterThan(maxInterestRate)) {
			return ErrInterestRateOutOfRange
		}
		if rate != nil && !rate.Equal(rate.Truncate(scale)) {
			return ErrInvalidAmountScale
		}
	}
	return nil
}

func checkAmount(d decimal.Decimal) error {
	if !d.Equal(d.Truncate(scale)) {
		return ErrInvalidAmountScale
	}
	if d.Abs().GreaterThanOrEqual(maxAmount) {
		return ErrAmountTooLarge
	}
	return nil
}
