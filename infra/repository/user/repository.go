package user

import (
	"context"
	"strings"
	"time"

	infrarepo "github.com/amirasaad/networth/infra/repository"
	"github.com/amirasaad/networth/pkg/dto"
	"github.com/amirasaad/networth/pkg/repository/user"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a gorm-backed user repository.
func New(db *gorm.DB) user.Repository {
	return &repository{db: db}
}

func (r *repository) Create(
	ctx context.Context,
	create *dto.UserCreate,
) error {
	now := time.Now().UTC()
	row := &User{
		ID:          create.ID,
		Email:       strings.ToLower(create.Email),
		Password:    create.Password,
		DisplayName: create.DisplayName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return infrarepo.WrapError(func() error {
		return r.db.WithContext(ctx).Create(row).Error
	})
}

func (r *repository) Get(
	ctx context.Context,
	id uuid.UUID,
) (*dto.UserRead, error) {
	var row User
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, infrarepo.MapGormErrorToDomain(err)
	}
	return mapModelToDTO(&row), nil
}

func (r *repository) GetByEmail(
	ctx context.Context,
	email string,
) (*dto.UserRead, error) {
	var row User
	if err := r.db.WithContext(ctx).
		First(&row, "email = ?", strings.ToLower(email)).Error; err != nil {
		return nil, infrarepo.MapGormErrorToDomain(err)
	}
	return mapModelToDTO(&row), nil
}

func (r *repository) ExistsByEmail(
	ctx context.Context,
	email string,
) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&User{}).
		Where("email = ?", strings.ToLower(email)).
		Count(&count).Error
	if err != nil {
		return false, infrarepo.MapGormErrorToDomain(err)
	}
	return count > 0, nil
}

func (r *repository) Update(
	ctx context.Context,
	id uuid.UUID,
	update *dto.UserUpdate,
) error {
	updates := map[string]any{"updated_at": time.Now().UTC()}
	if update.DisplayName != nil {
		updates["display_name"] = *update.DisplayName
	}
	if update.Password != nil {
		updates["password"] = *update.Password
	}
	res := r.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).Updates(updates)
	return infrarepo.RequireRows(res)
}

func (r *repository) EmailsByID(
	ctx context.Context,
	ids []uuid.UUID,
) (map[uuid.UUID]string, error) {
	out := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []User
	if err := r.db.WithContext(ctx).
		Select("id", "email").
		Where("id IN ?", ids).
		Find(&rows).Error; err != nil {
		return nil, infrarepo.MapGormErrorToDomain(err)
	}
	for _, row := range rows {
		out[row.ID] = row.Email
	}
	return out, nil
}

func mapModelToDTO(u *User) *dto.UserRead {
	return &dto.UserRead{
		ID:             u.ID,
		Email:          u.Email,
		HashedPassword: u.Password,
		DisplayName:    u.DisplayName,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

var _ user.Repository = (*repository)(nil)
