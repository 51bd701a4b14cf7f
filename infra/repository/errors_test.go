package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/amirasaad/networth/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMapGormErrorToDomain(t *testing.T) {
	t.Parallel()

	driverErr := errors.New("connection refused")
	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{
			name:     "nil error returns nil",
			input:    nil,
			expected: nil,
		},
		{
			name:     "duplicate key error maps to ErrConflict",
			input:    gorm.ErrDuplicatedKey,
			expected: domain.ErrConflict,
		},
		{
			name:     "record not found error maps to ErrNotFound",
			input:    gorm.ErrRecordNotFound,
			expected: domain.ErrNotFound,
		},
		{
			name:     "non-GORM error maps to ErrGateway",
			input:    driverErr,
			expected: domain.ErrGateway,
		},
		{
			name:     "wrapped duplicate key error maps correctly",
			input:    errors.Join(errors.New("outer error"), gorm.ErrDuplicatedKey),
			expected: domain.ErrConflict,
		},
		{
			name:     "wrapped record not found error maps correctly",
			input:    fmt.Errorf("query: %w", gorm.ErrRecordNotFound),
			expected: domain.ErrNotFound,
		},
		{
			name:     "untranslated sqlite unique violation maps to ErrConflict",
			input:    errors.New("constraint failed: UNIQUE constraint failed: users.email (2067)"),
			expected: domain.ErrConflict,
		},
		{
			name:     "domain error passes through",
			input:    fmt.Errorf("%w: role", domain.ErrForbidden),
			expected: domain.ErrForbidden,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := MapGormErrorToDomain(tt.input)
			if tt.expected == nil {
				require.NoError(t, result)
				return
			}
			require.Error(t, result)
			assert.ErrorIs(t, result, tt.expected)
		})
	}
}

func TestMapGormErrorToDomain_KeepsCause(t *testing.T) {
	t.Parallel()
	cause := errors.New("disk full")
	err := MapGormErrorToDomain(cause)
	assert.ErrorIs(t, err, domain.ErrGateway)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestWrapError(t *testing.T) {
	t.Parallel()
	assert.NoError(t, WrapError(func() error { return nil }))
	assert.ErrorIs(t, WrapError(func() error { return gorm.ErrRecordNotFound }), domain.ErrNotFound)
}
