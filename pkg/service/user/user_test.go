package user_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/amirasaad/networth/infra"
	infra_eventbus "github.com/amirasaad/networth/infra/eventbus"
	"github.com/amirasaad/networth/internal/fixtures/mocks"
	"github.com/amirasaad/networth/internal/testdb"
	"github.com/amirasaad/networth/pkg/domain/events"
	"github.com/amirasaad/networth/pkg/domain/user"
	repouser "github.com/amirasaad/networth/pkg/repository/user"
	usersvc "github.com/amirasaad/networth/pkg/service/user"
	"github.com/amirasaad/networth/pkg/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	logger := discardLogger()
	bus := infra_eventbus.NewWithMemory(logger)
	svc := usersvc.New(infra.NewUoW(testdb.Open(t, infra.Models()...)), bus, logger)

	u, err := svc.Register(ctx, " Alice@Example.com", "secret1", "Alice")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.True(t, utils.CheckPasswordHash("secret1", u.Password))

	stored, err := svc.GetUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", stored.DisplayName)

	_, err = svc.Register(ctx, "alice@example.com", "another", "")
	assert.ErrorIs(t, err, user.ErrEmailTaken)

	require.Len(t, bus.Published(), 1)
	assert.Equal(t, events.EventTypeUserRegistered.String(), bus.Published()[0].Type())

	updated, err := svc.UpdateProfile(ctx, u.ID, "Ally", "")
	require.NoError(t, err)
	assert.Equal(t, "Ally", updated.DisplayName)
	assert.Equal(t, stored.HashedPassword, updated.HashedPassword)

	_, err = svc.UpdateProfile(ctx, uuid.New(), "Ghost", "")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
	_, err = svc.GetUser(ctx, uuid.New())
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestRegister_Validation(t *testing.T) {
	svc := usersvc.New(mocks.NewUnitOfWork(t), nil, discardLogger())
	ctx := context.Background()

	_, err := svc.Register(ctx, "not-an-email", "secret1", "")
	assert.ErrorIs(t, err, user.ErrInvalidEmail)
	_, err = svc.Register(ctx, "a@b.com", "123", "")
	assert.ErrorIs(t, err, user.ErrWeakPassword)
	_, err = svc.UpdateProfile(ctx, uuid.New(), "x", "123")
	assert.ErrorIs(t, err, user.ErrWeakPassword)
}

func TestRegister_RepoError(t *testing.T) {
	uow := mocks.NewUnitOfWork(t)
	users := &mocks.UserRepository{}
	users.Test(t)
	uow.On("Do", mock.Anything, mock.Anything).Return(nil)
	uow.On("GetRepository", mocks.RepoType[repouser.Repository]()).Return(users, nil)
	users.On("ExistsByEmail", mock.Anything, "bob@example.com").Return(false, nil)
	users.On("Create", mock.Anything, mock.Anything).Return(errors.New("db error"))

	svc := usersvc.New(uow, nil, discardLogger())
	u, err := svc.Register(context.Background(), "bob@example.com", "password", "")
	require.Error(t, err)
	assert.Nil(t, u)
	users.AssertExpectations(t)
}
