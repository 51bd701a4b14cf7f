package member

import (
	"context"

	"github.com/amirasaad/networth/pkg/dto"
	"github.com/google/uuid"
)

// Repository persists family memberships. (family_id, user_id) is unique.
type Repository interface {
	// Create returns domain.ErrConflict when the user is already a member.
	Create(ctx context.Context, create *dto.MemberCreate) error

	ListByFamily(ctx context.Context, familyID uuid.UUID) ([]*dto.MemberRead, error)

	// UpdateRole returns domain.ErrNotFound for an unknown id.
	UpdateRole(ctx context.Context, id uuid.UUID, role string) error

	Delete(ctx context.Context, id uuid.UUID) error

	DeleteByFamily(ctx context.Context, familyID uuid.UUID) error
}
