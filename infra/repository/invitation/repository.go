package invitation

import (
	"context"
	"strings"

	infrarepo "github.com/amirasaad/networth/infra/repository"
	"github.com/amirasaad/networth/pkg/dto"
	"github.com/amirasaad/networth/pkg/repository/invitation"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a gorm-backed invitation repository.
func New(db *gorm.DB) invitation.Repository {
	return &repository{db: db}
}

func (r *repository) Create(
	ctx context.Context,
	create *dto.InvitationCreate,
) error {
	row := &Invitation{
		ID:           create.ID,
		FamilyID:     create.FamilyID,
		InvitedBy:    create.InvitedBy,
		InviteeEmail: strings.ToLower(create.InviteeEmail),
		Status:       create.Status,
		Role:         create.Role,
		CreatedAt:    create.CreatedAt,
		ExpiresAt:    create.ExpiresAt,
	}
	return infrarepo.WrapError(func() error {
		return r.db.WithContext(ctx).Create(row).Error
	})
}

func (r *repository) Get(
	ctx context.Context,
	id uuid.UUID,
) (*dto.InvitationRead, error) {
	var row Invitation
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, infrarepo.MapGormErrorToDomain(err)
	}
	return mapModelToDTO(&row), nil
}

func (r *repository) ListByFamily(
	ctx context.Context,
	familyID uuid.UUID,
	status string,
) ([]*dto.InvitationRead, error) {
	return list(r.db.WithContext(ctx).Where("family_id = ? AND status = ?", familyID, status))
}

func (r *repository) ListByEmail(
	ctx context.Context,
	email string,
	status string,
) ([]*dto.InvitationRead, error) {
	return list(r.db.WithContext(ctx).
		Where("invitee_email = ? AND status = ?", strings.ToLower(email), status))
}

func list(q *gorm.DB) ([]*dto.InvitationRead, error) {
	var rows []Invitation
	if err := q.Order("created_at DESC, id ASC").Find(&rows).Error; err != nil {
		return nil, infrarepo.MapGormErrorToDomain(err)
	}
	out := make([]*dto.InvitationRead, 0, len(rows))
	for i := range rows {
		out = append(out, mapModelToDTO(&rows[i]))
	}
	return out, nil
}

func (r *repository) Respond(
	ctx context.Context,
	id uuid.UUID,
	update *dto.InvitationUpdate,
) error {
	res := r.db.WithContext(ctx).Model(&Invitation{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":       update.Status,
			"invitee_id":   update.InviteeID,
			"responded_at": update.RespondedAt,
		})
	return infrarepo.RequireRows(res)
}

func (r *repository) Delete(
	ctx context.Context,
	id uuid.UUID,
) error {
	return infrarepo.WrapError(func() error {
		return r.db.WithContext(ctx).Delete(&Invitation{}, "id = ?", id).Error
	})
}

func (r *repository) DeleteByFamily(
	ctx context.Context,
	familyID uuid.UUID,
) error {
	return infrarepo.WrapError(func() error {
		return r.db.WithContext(ctx).Where("family_id = ?", familyID).Delete(&Invitation{}).Error
	})
}

func mapModelToDTO(i *Invitation) *dto.InvitationRead {
	return &dto.InvitationRead{
		ID:           i.ID,
		FamilyID:     i.FamilyID,
		InvitedBy:    i.InvitedBy,
		InviteeEmail: i.InviteeEmail,
		InviteeID:    i.InviteeID,
		Status:       i.Status,
		Role:         i.Role,
		CreatedAt:    i.CreatedAt,
		ExpiresAt:    i.ExpiresAt,
		RespondedAt:  i.RespondedAt,
	}
}

var _ invitation.Repository = (*repository)(nil)
