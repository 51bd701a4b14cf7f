package category_test

import (
	"errors"
	"testing"

	"github.com/amirasaad/networth/pkg/domain"
	"github.com/amirasaad/networth/pkg/domain/category"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogSizes(t *testing.T) {
	t.Parallel()
	assert.Len(t, category.Assets(), 11)
	assert.Len(t, category.Liabilities(), 6)
}

func TestCatalogKeysAreUnique(t *testing.T) {
	t.Parallel()
	seen := map[category.Key]bool{}
	for _, d := range append(category.Assets(), category.Liabilities()...) {
		assert.False(t, seen[d.Key], "duplicate key %s", d.Key)
		seen[d.Key] = true
		assert.NotEmpty(t, d.Label)
		assert.NotEmpty(t, d.Icon)
		assert.Regexp(t, `^#[0-9A-F]{6}$`, d.Color)
	}
}

func TestIsValid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		kind category.Kind
		key  category.Key
		want bool
	}{
		{"asset in asset catalog", category.KindAsset, category.Stock, true},
		{"liability in liability catalog", category.KindLiability, category.Mortgage, true},
		{"liability key as asset", category.KindAsset, category.CreditCard, false},
		{"asset key as liability", category.KindLiability, category.Cash, false},
		{"unknown key", category.KindAsset, "yacht", false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, category.IsValid(tc.kind, tc.key))
		})
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()
	d, ok := category.Lookup(category.Gold)
	require.True(t, ok)
	assert.Equal(t, category.KindAsset, d.Kind)
	assert.Equal(t, "#EAB308", d.Color)

	_, ok = category.Lookup("nope")
	assert.False(t, ok)
}

func TestAssetsReturnsCopy(t *testing.T) {
	t.Parallel()
	a := category.Assets()
	a[0].Label = "changed"
	assert.Equal(t, "Cash", category.Assets()[0].Label)
}

func TestParseKind(t *testing.T) {
	t.Parallel()
	k, err := category.ParseKind("liability")
	require.NoError(t, err)
	assert.Equal(t, category.KindLiability, k)

	_, err = category.ParseKind("equity")
	assert.True(t, errors.Is(err, domain.ErrValidation))
	assert.Nil(t, category.Of("equity"))
}
