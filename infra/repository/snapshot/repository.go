package snapshot

import (
	"context"

	infrarepo "github.com/amirasaad/networth/infra/repository"
	"github.com/amirasaad/networth/pkg/dto"
	"github.com/amirasaad/networth/pkg/repository/snapshot"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a gorm-backed snapshot repository.
func New(db *gorm.DB) snapshot.Repository {
	return &repository{db: db}
}

func (r *repository) Create(
	ctx context.Context,
	create *dto.SnapshotCreate,
) error {
	row := &Snapshot{
		ID:               create.ID,
		UserID:           create.UserID,
		Date:             create.Date,
		TotalAssets:      create.TotalAssets,
		TotalLiabilities: create.TotalLiabilities,
		NetWorth:         create.NetWorth,
		Breakdown:        create.Breakdown,
		CreatedAt:        create.CreatedAt,
	}
	return infrarepo.WrapError(func() error {
		return r.db.WithContext(ctx).Create(row).Error
	})
}

func (r *repository) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*dto.SnapshotRead, error) {
	var rows []Snapshot
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date ASC, created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, infrarepo.MapGormErrorToDomain(err)
	}
	out := make([]*dto.SnapshotRead, 0, len(rows))
	for i := range rows {
		out = append(out, mapModelToDTO(&rows[i]))
	}
	return out, nil
}

func (r *repository) DeleteAllByUser(
	ctx context.Context,
	userID uuid.UUID,
) error {
	return infrarepo.WrapError(func() error {
		return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&Snapshot{}).Error
	})
}

func mapModelToDTO(s *Snapshot) *dto.SnapshotRead {
	breakdown := s.Breakdown
	if breakdown == nil {
		breakdown = []dto.BreakdownEntry{}
	}
	return &dto.SnapshotRead{
		ID:               s.ID,
		UserID:           s.UserID,
		Date:             s.Date,
		TotalAssets:      s.TotalAssets,
		TotalLiabilities: s.TotalLiabilities,
		NetWorth:         s.NetWorth,
		Breakdown:        breakdown,
		CreatedAt:        s.CreatedAt,
	}
}

var _ snapshot.Repository = (*repository)(nil)
