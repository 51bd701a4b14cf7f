package mocks

import (
	"context"
	"time"

	"github.com/amirasaad/networth/pkg/dto"
	"github.com/amirasaad/networth/pkg/repository/family"
	"github.com/amirasaad/networth/pkg/repository/invitation"
	"github.com/amirasaad/networth/pkg/repository/member"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type FamilyRepository struct {
	mock.Mock
}

func (m *FamilyRepository) Create(ctx context.Context, create *dto.FamilyCreate) error {
	return m.Called(ctx, create).Error(0)
}

func (m *FamilyRepository) Get(ctx context.Context, id uuid.UUID) (*dto.FamilyRead, error) {
	args := m.Called(ctx, id)
	f, _ := args.Get(0).(*dto.FamilyRead)
	return f, args.Error(1)
}

func (m *FamilyRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*dto.FamilyRead, error) {
	args := m.Called(ctx, userID)
	rows, _ := args.Get(0).([]*dto.FamilyRead)
	return rows, args.Error(1)
}

func (m *FamilyRepository) Rename(ctx context.Context, id uuid.UUID, name string, updatedAt time.Time) error {
	return m.Called(ctx, id, name, updatedAt).Error(0)
}

func (m *FamilyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MemberRepository struct {
	mock.Mock
}

func (m *MemberRepository) Create(ctx context.Context, create *dto.MemberCreate) error {
	return m.Called(ctx, create).Error(0)
}

func (m *MemberRepository) ListByFamily(ctx context.Context, familyID uuid.UUID) ([]*dto.MemberRead, error) {
	args := m.Called(ctx, familyID)
	rows, _ := args.Get(0).([]*dto.MemberRead)
	return rows, args.Error(1)
}

func (m *MemberRepository) UpdateRole(ctx context.Context, id uuid.UUID, role string) error {
	return m.Called(ctx, id, role).Error(0)
}

func (m *MemberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MemberRepository) DeleteByFamily(ctx context.Context, familyID uuid.UUID) error {
	return m.Called(ctx, familyID).Error(0)
}

type InvitationRepository struct {
	mock.Mock
}

func (m *InvitationRepository) Create(ctx context.Context, create *dto.InvitationCreate) error {
	return m.Called(ctx, create).Error(0)
}

func (m *InvitationRepository) Get(ctx context.Context, id uuid.UUID) (*dto.InvitationRead, error) {
	args := m.Called(ctx, id)
	inv, _ := args.Get(0).(*dto.InvitationRead)
	return inv, args.Error(1)
}

func (m *InvitationRepository) ListByFamily(
	ctx context.Context,
	familyID uuid.UUID,
	status string,
) ([]*dto.InvitationRead, error) {
	args := m.Called(ctx, familyID, status)
	rows, _ := args.Get(0).([]*dto.InvitationRead)
	return rows, args.Error(1)
}

func (m *InvitationRepository) ListByEmail(
	ctx context.Context,
	email string,
	status string,
) ([]*dto.InvitationRead, error) {
	args := m.Called(ctx, email, status)
	rows, _ := args.Get(0).([]*dto.InvitationRead)
	return rows, args.Error(1)
}

func (m *InvitationRepository) Respond(ctx context.Context, id uuid.UUID, update *dto.InvitationUpdate) error {
	return m.Called(ctx, id, update).Error(0)
}

func (m *InvitationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *InvitationRepository) DeleteByFamily(ctx context.Context, familyID uuid.UUID) error {
	return m.Called(ctx, familyID).Error(0)
}

var (
	_ family.Repository     = (*FamilyRepository)(nil)
	_ member.Repository     = (*MemberRepository)(nil)
	_ invitation.Repository = (*InvitationRepository)(nil)
)
