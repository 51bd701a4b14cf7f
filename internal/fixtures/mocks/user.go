package mocks

import (
	"context"

	"github.com/amirasaad/networth/pkg/dto"
	"github.com/amirasaad/networth/pkg/repository/user"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, create *dto.UserCreate) error {
	return m.Called(ctx, create).Error(0)
}

func (m *UserRepository) Get(ctx context.Context, id uuid.UUID) (*dto.UserRead, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*dto.UserRead)
	return u, args.Error(1)
}

func (m *UserRepository) GetByEmail(ctx context.Context, email string) (*dto.UserRead, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*dto.UserRead)
	return u, args.Error(1)
}

func (m *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *UserRepository) Update(ctx context.Context, id uuid.UUID, update *dto.UserUpdate) error {
	return m.Called(ctx, id, update).Error(0)
}

func (m *UserRepository) EmailsByID(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	args := m.Called(ctx, ids)
	emails, _ := args.Get(0).(map[uuid.UUID]string)
	return emails, args.Error(1)
}

var _ user.Repository = (*UserRepository)(nil)
