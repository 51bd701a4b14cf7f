package account

import (
	"context"

	infrarepo "github.com/amirasaad/networth/infra/repository"
	"github.com/amirasaad/networth/pkg/domain/category"
	"github.com/amirasaad/networth/pkg/dto"
	"github.com/amirasaad/networth/pkg/repository/account"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a gorm-backed account repository.
func New(db *gorm.DB) account.Repository {
	return &repository{db: db}
}

func model(kind category.Kind) any {
	if kind == category.KindLiability {
		return &Liability{}
	}
	return &Asset{}
}

func (r *repository) Create(
	ctx context.Context,
	create *dto.AccountCreate,
) error {
	var row any
	if category.Kind(create.Kind) == category.KindLiability {
		row = &Liability{
			ID:           create.ID,
			UserID:       create.UserID,
			Name:         create.Name,
			Amount:       create.Amount,
			Category:     create.Category,
			InterestRate: nullDecimal(create.InterestRate),
			DueDate:      create.DueDate,
			Note:         create.Note,
			Icon:         create.Icon,
			CreatedAt:    create.CreatedAt,
			UpdatedAt:    create.UpdatedAt,
		}
	} else {
		row = &Asset{
			ID:        create.ID,
			UserID:    create.UserID,
			Name:      create.Name,
			Amount:    create.Amount,
			Category:  create.Category,
			Platform:  create.Platform,
			Note:      create.Note,
			Icon:      create.Icon,
			CreatedAt: create.CreatedAt,
			UpdatedAt: create.UpdatedAt,
		}
	}
	return infrarepo.WrapError(func() error {
		return r.db.WithContext(ctx).Create(row).Error
	})
}

func (r *repository) Update(
	ctx context.Context,
	kind category.Kind,
	userID, id uuid.UUID,
	update *dto.AccountUpdate,
) error {
	updates := map[string]any{"updated_at": update.UpdatedAt}

	// Only include non-nil fields in the update
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.Amount != nil {
		updates["amount"] = *update.Amount
	}
	if update.Category != nil {
		updates["category"] = *update.Category
	}
	if update.Note != nil {
		updates["note"] = *update.Note
	}
	if update.Icon != nil {
		updates["icon"] = *update.Icon
	}
	if kind == category.KindAsset && update.Platform != nil {
		updates["platform"] = *update.Platform
	}
	if kind == category.KindLiability {
		if update.InterestRate != nil {
			updates["interest_rate"] = *update.InterestRate
		}
		if update.DueDate != nil {
			updates["due_date"] = *update.DueDate
		}
		if update.ClearInterestRate {
			updates["interest_rate"] = nil
		}
		if update.ClearDueDate {
			updates["due_date"] = nil
		}
	}

	res := r.db.WithContext(ctx).Model(model(kind)).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates)
	return infrarepo.RequireRows(res)
}

func (r *repository) Delete(
	ctx context.Context,
	kind category.Kind,
	userID, id uuid.UUID,
) error {
	return infrarepo.WrapError(func() error {
		return r.db.WithContext(ctx).
			Where("id = ? AND user_id = ?", id, userID).
			Delete(model(kind)).Error
	})
}

func (r *repository) ListByUser(
	ctx context.Context,
	kind category.Kind,
	userID uuid.UUID,
) ([]*dto.AccountRead, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at, id")
	if kind == category.KindLiability {
		var rows []Liability
		if err := q.Find(&rows).Error; err != nil {
			return nil, infrarepo.MapGormErrorToDomain(err)
		}
		out := make([]*dto.AccountRead, 0, len(rows))
		for i := range rows {
			out = append(out, mapLiabilityToDTO(&rows[i]))
		}
		return out, nil
	}
	var rows []Asset
	if err := q.Find(&rows).Error; err != nil {
		return nil, infrarepo.MapGormErrorToDomain(err)
	}
	out := make([]*dto.AccountRead, 0, len(rows))
	for i := range rows {
		out = append(out, mapAssetToDTO(&rows[i]))
	}
	return out, nil
}

func (r *repository) DeleteAllByUser(
	ctx context.Context,
	userID uuid.UUID,
) error {
	return infrarepo.WrapError(func() error {
		db := r.db.WithContext(ctx)
		if err := db.Where("user_id = ?", userID).Delete(&Asset{}).Error; err != nil {
			return err
		}
		return db.Where("user_id = ?", userID).Delete(&Liability{}).Error
	})
}

func mapAssetToDTO(a *Asset) *dto.AccountRead {
	return &dto.AccountRead{
		ID:        a.ID,
		UserID:    a.UserID,
		Kind:      string(category.KindAsset),
		Category:  a.Category,
		Name:      a.Name,
		Amount:    a.Amount,
		Note:      a.Note,
		Icon:      a.Icon,
		Platform:  a.Platform,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func mapLiabilityToDTO(l *Liability) *dto.AccountRead {
	var rate *decimal.Decimal
	if l.InterestRate.Valid {
		r := l.InterestRate.Decimal
		rate = &r
	}
	return &dto.AccountRead{
		ID:           l.ID,
		UserID:       l.UserID,
		Kind:         string(category.KindLiability),
		Category:     l.Category,
		Name:         l.Name,
		Amount:       l.Amount,
		Note:         l.Note,
		Icon:         l.Icon,
		InterestRate: rate,
		DueDate:      l.DueDate,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

var _ account.Repository = (*repository)(nil)
