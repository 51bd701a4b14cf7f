package account

import (
	"context"

	"github.com/amirasaad/networth/pkg/domain/category"
	"github.com/amirasaad/networth/pkg/dto"
	"github.com/google/uuid"
)

// Repository persists assets and liabilities. Every call is scoped to the
// owning user; rows of other users are invisible.
type Repository interface {
	// Create inserts a row into the table selected by create.Kind.
	Create(ctx context.Context, create *dto.AccountCreate) error

	// Update changes the non-nil fields of the row. It returns domain.ErrNotFound
	// when no row with id belongs to userID.
	Update(ctx context.Context, kind category.Kind, userID, id uuid.UUID, update *dto.AccountUpdate) error

	// Delete removes the row. Deleting an absent row is not an error.
	Delete(ctx context.Context, kind category.Kind, userID, id uuid.UUID) error

	// ListByUser returns every row of the kind owned by userID, oldest first.
	ListByUser(ctx context.Context, kind category.Kind, userID uuid.UUID) ([]*dto.AccountRead, error)

	// DeleteAllByUser removes every asset and liability of userID.
	DeleteAllByUser(ctx context.Context, userID uuid.UUID) error
}
