package user

import (
	"context"

	"github.com/amirasaad/networth/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines user data access. It doubles as the identity lookup
// used to show member emails.
type Repository interface {
	// Create returns domain.ErrConflict when the email is taken.
	Create(ctx context.Context, create *dto.UserCreate) error

	// Get returns domain.ErrNotFound for an unknown id.
	Get(ctx context.Context, id uuid.UUID) (*dto.UserRead, error)

	// GetByEmail returns domain.ErrNotFound for an unknown email.
	GetByEmail(ctx context.Context, email string) (*dto.UserRead, error)

	// ExistsByEmail checks if a user with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	Update(ctx context.Context, id uuid.UUID, update *dto.UserUpdate) error

	// EmailsByID maps each known id to its email. Unknown ids are omitted.
	EmailsByID(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)
}
