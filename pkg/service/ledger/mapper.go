package ledger

import (
	"github.com/amirasaad/networth/pkg/domain/account"
	"github.com/amirasaad/networth/pkg/domain/category"
	"github.com/amirasaad/networth/pkg/dto"
)

func toCreateDTO(a *account.Account) *dto.AccountCreate {
	return &dto.AccountCreate{
		ID:           a.ID,
		UserID:       a.UserID,
		Kind:         a.Kind.String(),
		Category:     a.Category.String(),
		Name:         a.Name,
		Amount:       a.Amount,
		Note:         a.Note,
		Icon:         a.Icon,
		Platform:     a.Platform,
		InterestRate: a.InterestRate,
		DueDate:      a.DueDate,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

// toUpdateDTO sends the merged values of every field the patch touched.
func toUpdateDTO(p account.Patch, merged *account.Account) *dto.AccountUpdate {
	u := &dto.AccountUpdate{
		UpdatedAt:         merged.UpdatedAt,
		ClearInterestRate: p.ClearInterestRate,
		ClearDueDate:      p.ClearDueDate,
	}
	if p.Name != nil {
		u.Name = &merged.Name
	}
	if p.Amount != nil {
		u.Amount = &merged.Amount
	}
	if p.Category != nil {
		c := merged.Category.String()
		u.Category = &c
	}
	if p.Note != nil {
		u.Note = &merged.Note
	}
	if p.Icon != nil {
		u.Icon = &merged.Icon
	}
	if p.Platform != nil {
		u.Platform = &merged.Platform
	}
	if p.InterestRate != nil && !p.ClearInterestRate {
		u.InterestRate = merged.InterestRate
	}
	if p.DueDate != nil && !p.ClearDueDate {
		u.DueDate = merged.DueDate
	}
	return u
}

func fromReadDTO(r *dto.AccountRead) *account.Account {
	return &account.Account{
		ID:           r.ID,
		UserID:       r.UserID,
		Kind:         category.Kind(r.Kind),
		Category:     category.Key(r.Category),
		Name:         r.Name,
		Amount:       r.Amount,
		Note:         r.Note,
		Icon:         r.Icon,
		Platform:     r.Platform,
		InterestRate: r.InterestRate,
		DueDate:      r.DueDate,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
