package member

import (
	"context"

	infrarepo "github.com/amirasaad/networth/infra/repository"
	"github.com/amirasaad/networth/pkg/dto"
	"github.com/amirasaad/networth/pkg/repository/member"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a gorm-backed membership repository.
func New(db *gorm.DB) member.Repository {
	return &repository{db: db}
}

func (r *repository) Create(
	ctx context.Context,
	create *dto.MemberCreate,
) error {
	row := &Member{
		ID:       create.ID,
		FamilyID: create.FamilyID,
		UserID:   create.UserID,
		Role:     create.Role,
		JoinedAt: create.JoinedAt,
	}
	return infrarepo.WrapError(func() error {
		return r.db.WithContext(ctx).Create(row).Error
	})
}

func (r *repository) ListByFamily(
	ctx context.Context,
	familyID uuid.UUID,
) ([]*dto.MemberRead, error) {
	var rows []Member
	if err := r.db.WithContext(ctx).
		Where("family_id = ?", familyID).
		Order("joined_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, infrarepo.MapGormErrorToDomain(err)
	}
	out := make([]*dto.MemberRead, 0, len(rows))
	for i := range rows {
		out = append(out, mapModelToDTO(&rows[i]))
	}
	return out, nil
}

func (r *repository) UpdateRole(
	ctx context.Context,
	id uuid.UUID,
	role string,
) error {
	res := r.db.WithContext(ctx).Model(&Member{}).
		Where("id = ?", id).
		Update("role", role)
	return infrarepo.RequireRows(res)
}

func (r *repository) Delete(
	ctx context.Context,
	id uuid.UUID,
) error {
	return infrarepo.WrapError(func() error {
		return r.db.WithContext(ctx).Delete(&Member{}, "id = ?", id).Error
	})
}

func (r *repository) DeleteByFamily(
	ctx context.Context,
	familyID uuid.UUID,
) error {
	return infrarepo.WrapError(func() error {
		return r.db.WithContext(ctx).Where("family_id = ?", familyID).Delete(&Member{}).Error
	})
}

func mapModelToDTO(m *Member) *dto.MemberRead {
	return &dto.MemberRead{
		ID:       m.ID,
		FamilyID: m.FamilyID,
		UserID:   m.UserID,
		Role:     m.Role,
		JoinedAt: m.JoinedAt,
	}
}

var _ member.Repository = (*repository)(nil)
