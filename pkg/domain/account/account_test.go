package account_test

import (
	"errors"
	"testing"
	"time"

	"github.com/amirasaad/networth/pkg/domain"
	"github.com/amirasaad/networth/pkg/domain/account"
	"github.com/amirasaad/networth/pkg/domain/category"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestBuilder_Validation(t *testing.T) {
	t.Parallel()
	rate := decimal.NewFromFloat(3.5)
	tooHigh := decimal.NewFromInt(101)
	due := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	base := func() *account.Builder {
		return account.New().
			WithUserID(uuid.New()).
			WithKind(category.KindAsset).
			WithCategory(category.Cash).
			WithName("Wallet").
			WithAmount(decimal.NewFromInt(10))
	}
	tests := []struct {
		name    string
		builder *account.Builder
		wantErr error
	}{
		{"valid asset", base(), nil},
		{"blank name", base().WithName("   "), account.ErrEmptyName},
		{"zero amount", base().WithAmount(decimal.Zero), account.ErrAmountMustBePositive},
		{"negative amount", base().WithAmount(decimal.NewFromInt(-1)), account.ErrAmountMustBePositive},
		{"missing owner", base().WithUserID(uuid.Nil), account.ErrMissingOwner},
		{"bad kind", base().WithKind("equity"), category.ErrInvalidKind},
		{"liability category on asset", base().WithCategory(category.Mortgage), category.ErrInvalidCategory},
		{"interest rate on asset", base().WithInterestRate(&rate), account.ErrFieldNotApplicable},
		{"valid liability", base().WithKind(category.KindLiability).WithCategory(category.CarLoan).
			WithInterestRate(&rate).WithDueDate(&due), nil},
		{"platform on liability", base().WithKind(category.KindLiability).WithCategory(category.CarLoan).
			WithPlatform("Bank"), account.ErrFieldNotApplicable},
		{"rate over 100", base().WithKind(category.KindLiability).WithCategory(category.CarLoan).
			WithInterestRate(&tooHigh), account.ErrInterestRateOutOfRange},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a, err := tc.builder.Build()
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.True(t, errors.Is(err, domain.ErrValidation))
				assert.Nil(t, a)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, a.CreatedAt, a.UpdatedAt)
		})
	}
}

func TestBuilder_DefaultsAndTrim(t *testing.T) {
	t.Parallel()
	a, err := account.New().
		WithUserID(uuid.New()).
		WithKind(category.KindLiability).
		WithCategory(category.CreditCard).
		WithName("  Card ").
		WithAmount(decimal.NewFromInt(5)).
		Build()
	require.NoError(t, err)
	assert.Equal(t, "Card", a.Name)
	assert.Equal(t, account.DefaultLiabilityIcon, a.Icon)
	assert.True(t, a.Signed().Equal(decimal.NewFromInt(-5)))
	assert.False(t, a.IsAsset())
}

func TestApply(t *testing.T) {
	t.Parallel()
	a, err := account.New().
		WithUserID(uuid.New()).
		WithKind(category.KindAsset).
		WithCategory(category.Fund).
		WithName("Index").
		WithAmount(decimal.NewFromInt(100)).
		WithNow(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)).
		Build()
	require.NoError(t, err)

	later := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	updated, err := a.Apply(account.Patch{
		Name:     ptr("Index fund"),
		Amount:   ptr(decimal.NewFromInt(120)),
		Platform: ptr("Broker"),
	}, later)
	require.NoError(t, err)
	assert.Equal(t, "Index fund", updated.Name)
	assert.True(t, updated.Amount.Equal(decimal.NewFromInt(120)))
	assert.Equal(t, "Broker", updated.Platform)
	assert.Equal(t, later, updated.UpdatedAt)
	assert.Equal(t, a.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "Index", a.Name, "receiver must be untouched")

	_, err = a.Apply(account.Patch{Name: ptr("")}, later)
	assert.ErrorIs(t, err, account.ErrEmptyName)
	_, err = a.Apply(account.Patch{Amount: ptr(decimal.NewFromInt(-3))}, later)
	assert.ErrorIs(t, err, account.ErrNegativeAmount)
	_, err = a.Apply(account.Patch{Category: ptr(category.Mortgage)}, later)
	assert.ErrorIs(t, err, category.ErrInvalidCategory)
	_, err = a.Apply(account.Patch{DueDate: &later}, later)
	assert.ErrorIs(t, err, account.ErrFieldNotApplicable)
	assert.True(t, account.Patch{}.Empty())
}

func TestAmountPrecision(t *testing.T) {
	t.Parallel()
	base := func(amount string) *account.Builder {
		return account.New().
			WithUserID(uuid.New()).
			WithKind(category.KindAsset).
			WithCategory(category.Cash).
			WithName("Wallet").
			WithAmount(decimal.RequireFromString(amount))
	}
	tests := []struct {
		amount  string
		wantErr error
	}{
		{"0.01", nil},
		{"12.50", nil},
		{"12.500", nil},
		{"999999999999999999.99", nil},
		{"0.001", account.ErrInvalidAmountScale},
		{"10.125", account.ErrInvalidAmountScale},
		{"1000000000000000000", account.ErrAmountTooLarge},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.amount, func(t *testing.T) {
			t.Parallel()
			_, err := base(tc.amount).Build()
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}

	a, err := base("10").Build()
	require.NoError(t, err)
	_, err = a.Apply(account.Patch{Amount: ptr(decimal.RequireFromString("0.005"))}, time.Now())
	assert.ErrorIs(t, err, account.ErrInvalidAmountScale)
	_, err = a.Apply(account.Patch{Amount: ptr(decimal.New(1, 19))}, time.Now())
	assert.ErrorIs(t, err, account.ErrAmountTooLarge)

	rate := decimal.RequireFromString("4.125")
	_, err = base("10").WithKind(category.KindLiability).WithCategory(category.Mortgage).
		WithInterestRate(&rate).Build()
	assert.ErrorIs(t, err, account.ErrInvalidAmountScale)
}

func TestApply_ClearLiabilityFields(t *testing.T) {
	t.Parallel()
	rate := decimal.RequireFromString("4.2")
	due := time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)
	a, err := account.New().
		WithUserID(uuid.New()).
		WithKind(category.KindLiability).
		WithCategory(category.Mortgage).
		WithName("Home loan").
		WithAmount(decimal.NewFromInt(1000)).
		WithInterestRate(&rate).
		WithDueDate(&due).
		Build()
	require.NoError(t, err)

	p := account.Patch{ClearInterestRate: true, ClearDueDate: true}
	assert.False(t, p.Empty())
	cleared, err := a.Apply(p, time.Now())
	require.NoError(t, err)
	assert.Nil(t, cleared.InterestRate)
	assert.Nil(t, cleared.DueDate)
	assert.NotNil(t, a.InterestRate, "receiver must be untouched")

	asset, err := account.New().
		WithUserID(uuid.New()).
		WithKind(category.KindAsset).
		WithCategory(category.Cash).
		WithName("Wallet").
		WithAmount(decimal.NewFromInt(1)).
		Build()
	require.NoError(t, err)
	_, err = asset.Apply(account.Patch{ClearDueDate: true}, time.Now())
	assert.ErrorIs(t, err, account.ErrFieldNotApplicable)
}
