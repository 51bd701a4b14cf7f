package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/amirasaad/networth/pkg/domain"
	"gorm.io/gorm"
)

var taxonomy = []error{
	domain.ErrValidation,
	domain.ErrNotFound,
	domain.ErrConflict,
	domain.ErrForbidden,
	domain.ErrUnauthorized,
	domain.ErrGateway,
}

// MapGormErrorToDomain converts GORM errors to domain errors.
// Errors that already carry a domain classification pass through unchanged.
// Anything unrecognised is wrapped in domain.ErrGateway with the cause kept in the chain.
func MapGormErrorToDomain(err error) error {
	if err == nil {
		return nil
	}
	for _, known := range taxonomy {
		if errors.Is(err, known) {
			return err
		}
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %w", domain.ErrNotFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey), isUniqueViolation(err):
		return fmt.Errorf("%w: %w", domain.ErrConflict, err)
	}
	return fmt.Errorf("%w: %w", domain.ErrGateway, err)
}

// isUniqueViolation catches driver errors that reach us untranslated.
func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}

// WrapError wraps a GORM operation and automatically maps errors.
//
// Usage:
//
//	err := WrapError(func() error {
//	    return r.db.WithContext(ctx).Create(user).Error
//	})
func WrapError(op func() error) error {
	return MapGormErrorToDomain(op())
}

// RequireRows maps a result that touched no rows to domain.ErrNotFound.
func RequireRows(res *gorm.DB) error {
	if res.Error != nil {
		return MapGormErrorToDomain(res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: no matching row", domain.ErrNotFound)
	}
	return nil
}
