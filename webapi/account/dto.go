package account

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/amirasaad/networth/pkg/domain"
	"github.com/amirasaad/networth/pkg/domain/account"
	"github.com/amirasaad/networth/pkg/domain/category"
	"github.com/shopspring/decimal"
)

//revive:disable

const dateLayout = "2006-01-02"

// CreateAccountRequest is the body of POST /accounts/assets and /accounts/liabilities.
type CreateAccountRequest struct {
	Category     string           `json:"category" validate:"required,max=32"`
	Name         string           `json:"name" validate:"required,max=100"`
	Amount       *decimal.Decimal `json:"amount" validate:"required"`
	Note         string           `json:"note" validate:"max=500"`
	Icon         string           `json:"icon" validate:"max=16"`
	Platform     string           `json:"platform" validate:"max=100"`
	InterestRate *decimal.Decimal `json:"interestRate"`
	DueDate      string           `json:"dueDate" validate:"omitempty,datetime=2006-01-02"`
}

// optional tells an absent JSON field apart from an explicit null.
type optional[T any] struct {
	Set   bool
	Value *T
}

func (o *optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// UpdateAccountRequest is the body of PATCH /accounts/:id. Absent fields are kept.
// interestRate and dueDate are cleared by null; dueDate also by "".
type UpdateAccountRequest struct {
	Category     *string                   `json:"category" validate:"omitempty,max=32"`
	Name         *string                   `json:"name" validate:"omitempty,max=100"`
	Amount       *decimal.Decimal          `json:"amount"`
	Note         *string                   `json:"note" validate:"omitempty,max=500"`
	Icon         *string                   `json:"icon" validate:"omitempty,max=16"`
	Platform     *string                   `json:"platform" validate:"omitempty,max=100"`
	InterestRate optional[decimal.Decimal] `json:"interestRate"`
	DueDate      optional[string]          `json:"dueDate"`
}

var errInvalidDueDate = fmt.Errorf("%w: dueDate must be YYYY-MM-DD", domain.ErrValidation)

// AccountDTO is the API representation of an asset or liability.
type AccountDTO struct {
	ID           string           `json:"id"`
	Kind         category.Kind    `json:"kind"`
	Category     category.Key     `json:"category"`
	Name         string           `json:"name"`
	Amount       decimal.Decimal  `json:"amount"`
	Note         string           `json:"note,omitempty"`
	Icon         string           `json:"icon"`
	Platform     string           `json:"platform,omitempty"`
	InterestRate *decimal.Decimal `json:"interestRate,omitempty"`
	DueDate      string           `json:"dueDate,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

// AccountListDTO is the body of GET /accounts. Categories holds every category
// with at least one account, whatever the filter.
type AccountListDTO struct {
	Accounts   []AccountDTO          `json:"accounts"`
	Categories []category.Descriptor `json:"categories"`
}

// SummaryDTO is the body of GET /accounts/summary.
type SummaryDTO struct {
	account.Totals
	AssetRatio decimal.Decimal `json:"assetRatio"`
}

func toAccountDTO(a *account.Account) AccountDTO {
	out := AccountDTO{
		ID:           a.ID.String(),
		Kind:         a.Kind,
		Category:     a.Category,
		Name:         a.Name,
		Amount:       a.Amount,
		Note:         a.Note,
		Icon:         a.Icon,
		Platform:     a.Platform,
		InterestRate: a.InterestRate,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
	if a.DueDate != nil {
		out.DueDate = a.DueDate.Format(dateLayout)
	}
	return out
}

func toAccountDTOs(accounts []*account.Account) []AccountDTO {
	out := make([]AccountDTO, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, toAccountDTO(a))
	}
	return out
}

// parseDate reads a validated YYYY-MM-DD date. Empty yields nil.
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

func (r *UpdateAccountRequest) toPatch() (account.Patch, error) {
	p := account.Patch{
		Name:     r.Name,
		Amount:   r.Amount,
		Note:     r.Note,
		Icon:     r.Icon,
		Platform: r.Platform,
	}
	if r.Category != nil {
		key := category.Key(*r.Category)
		p.Category = &key
	}
	if r.InterestRate.Set {
		p.InterestRate = r.InterestRate.Value
		p.ClearInterestRate = r.InterestRate.Value == nil
	}
	if r.DueDate.Set {
		if r.DueDate.Value == nil || *r.DueDate.Value == "" {
			p.ClearDueDate = true
		} else {
			t, err := time.Parse(dateLayout, *r.DueDate.Value)
			if err != nil {
				return account.Patch{}, errInvalidDueDate
			}
			p.DueDate = &t
		}
	}
	return p, nil
}
