package mocks

import (
	"context"

	"github.com/amirasaad/networth/pkg/domain/category"
	"github.com/amirasaad/networth/pkg/dto"
	"github.com/amirasaad/networth/pkg/repository/account"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type AccountRepository struct {
	mock.Mock
}

func (m *AccountRepository) Create(ctx context.Context, create *dto.AccountCreate) error {
	return m.Called(ctx, create).Error(0)
}

func (m *AccountRepository) Update(
	ctx context.Context,
	kind category.Kind,
	userID, id uuid.UUID,
	update *dto.AccountUpdate,
) error {
	return m.Called(ctx, kind, userID, id, update).Error(0)
}

func (m *AccountRepository) Delete(ctx context.Context, kind category.Kind, userID, id uuid.UUID) error {
	return m.Called(ctx, kind, userID, id).Error(0)
}

func (m *AccountRepository) ListByUser(
	ctx context.Context,
	kind category.Kind,
	userID uuid.UUID,
) ([]*dto.AccountRead, error) {
	args := m.Called(ctx, kind, userID)
	rows, _ := args.Get(0).([]*dto.AccountRead)
	return rows, args.Error(1)
}

func (m *AccountRepository) DeleteAllByUser(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

var _ account.Repository = (*AccountRepository)(nil)
