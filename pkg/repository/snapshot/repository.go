package snapshot

import (
	"context"

	"github.com/amirasaad/networth/pkg/dto"
	"github.com/google/uuid"
)

// Repository persists snapshots. Snapshots are never updated.
type Repository interface {
	Create(ctx context.Context, create *dto.SnapshotCreate) error

	// ListByUser returns the user's snapshots ordered by date ascending.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*dto.SnapshotRead, error)

	DeleteAllByUser(ctx context.Context, userID uuid.UUID) error
}
