package invitation

import (
	"context"

	"github.com/amirasaad/networth/pkg/dto"
	"github.com/google/uuid"
)

// Repository persists family invitations.
type Repository interface {
	Create(ctx context.Context, create *dto.InvitationCreate) error

	// Get returns domain.ErrNotFound for an unknown id.
	Get(ctx context.Context, id uuid.UUID) (*dto.InvitationRead, error)

	// ListByFamily returns the family's invitations in the given status, newest first.
	ListByFamily(ctx context.Context, familyID uuid.UUID, status string) ([]*dto.InvitationRead, error)

	// ListByEmail matches the lower-cased invitee email.
	ListByEmail(ctx context.Context, email string, status string) ([]*dto.InvitationRead, error)

	// Respond records the invitee's answer. It returns domain.ErrNotFound for an unknown id.
	Respond(ctx context.Context, id uuid.UUID, update *dto.InvitationUpdate) error

	Delete(ctx context.Context, id uuid.UUID) error

	DeleteByFamily(ctx context.Context, familyID uuid.UUID) error
}
