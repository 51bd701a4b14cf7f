package family

import (
	"context"
	"time"

	"github.com/amirasaad/networth/pkg/dto"
	"github.com/google/uuid"
)

// Repository persists families.
type Repository interface {
	Create(ctx context.Context, create *dto.FamilyCreate) error

	// Get returns domain.ErrNotFound for an unknown id.
	Get(ctx context.Context, id uuid.UUID) (*dto.FamilyRead, error)

	// ListByUser returns the families userID holds a membership in.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*dto.FamilyRead, error)

	// Rename returns domain.ErrNotFound for an unknown id.
	Rename(ctx context.Context, id uuid.UUID, name string, updatedAt time.Time) error

	Delete(ctx context.Context, id uuid.UUID) error
}
