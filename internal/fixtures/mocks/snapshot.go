package mocks

import (
	"context"

	"github.com/amirasaad/networth/pkg/dto"
	"github.com/amirasaad/networth/pkg/repository/snapshot"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type SnapshotRepository struct {
	mock.Mock
}

func (m *SnapshotRepository) Create(ctx context.Context, create *dto.SnapshotCreate) error {
	return m.Called(ctx, create).Error(0)
}

func (m *SnapshotRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*dto.SnapshotRead, error) {
	args := m.Called(ctx, userID)
	rows, _ := args.Get(0).([]*dto.SnapshotRead)
	return rows, args.Error(1)
}

func (m *SnapshotRepository) DeleteAllByUser(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

var _ snapshot.Repository = (*SnapshotRepository)(nil)
