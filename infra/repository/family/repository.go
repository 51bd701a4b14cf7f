package family

import (
	"context"
	"time"

	infrarepo "github.com/amirasaad/networth/infra/repository"
	"github.com/amirasaad/networth/pkg/dto"
	"github.com/amirasaad/networth/pkg/repository/family"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a gorm-backed family repository.
func New(db *gorm.DB) family.Repository {
	return &repository{db: db}
}

func (r *repository) Create(
	ctx context.Context,
	create *dto.FamilyCreate,
) error {
	row := &Family{
		ID:        create.ID,
		Name:      create.Name,
		CreatedBy: create.CreatedBy,
		CreatedAt: create.CreatedAt,
		UpdatedAt: create.UpdatedAt,
	}
	return infrarepo.WrapError(func() error {
		return r.db.WithContext(ctx).Create(row).Error
	})
}

func (r *repository) Get(
	ctx context.Context,
	id uuid.UUID,
) (*dto.FamilyRead, error) {
	var row Family
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, infrarepo.MapGormErrorToDomain(err)
	}
	return mapModelToDTO(&row), nil
}

func (r *repository) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*dto.FamilyRead, error) {
	var rows []Family
	if err := r.db.WithContext(ctx).
		Joins("JOIN family_members ON family_members.family_id = families.id").
		Where("family_members.user_id = ?", userID).
		Order("families.created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, infrarepo.MapGormErrorToDomain(err)
	}
	out := make([]*dto.FamilyRead, 0, len(rows))
	for i := range rows {
		out = append(out, mapModelToDTO(&rows[i]))
	}
	return out, nil
}

func (r *repository) Rename(
	ctx context.Context,
	id uuid.UUID,
	name string,
	updatedAt time.Time,
) error {
	res := r.db.WithContext(ctx).Model(&Family{}).
		Where("id = ?", id).
		Updates(map[string]any{"name": name, "updated_at": updatedAt})
	return infrarepo.RequireRows(res)
}

func (r *repository) Delete(
	ctx context.Context,
	id uuid.UUID,
) error {
	return infrarepo.WrapError(func() error {
		return r.db.WithContext(ctx).Delete(&Family{}, "id = ?", id).Error
	})
}

func mapModelToDTO(f *Family) *dto.FamilyRead {
	return &dto.FamilyRead{
		ID:        f.ID,
		Name:      f.Name,
		CreatedBy: f.CreatedBy,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

var _ family.Repository = (*repository)(nil)
