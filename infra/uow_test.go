package infra

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirasaad/networth/pkg/repository"
	"github.com/amirasaad/networth/pkg/repository/account"
	"github.com/amirasaad/networth/pkg/repository/family"
	"github.com/amirasaad/networth/pkg/repository/invitation"
	"github.com/amirasaad/networth/pkg/repository/member"
	"github.com/amirasaad/networth/pkg/repository/snapshot"
	"github.com/amirasaad/networth/pkg/repository/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestUoW_DoAndGetRepository(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)
	db, mock := newMockDB(t)
	uow := NewUoW(db)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := uow.Do(context.Background(), func(txUow repository.UnitOfWork) error {
		accounts, err := repository.Get[account.Repository](txUow)
		require.NoError(err)
		assert.NotNil(accounts)

		snapshots, err := repository.Get[snapshot.Repository](txUow)
		require.NoError(err)
		assert.NotNil(snapshots)

		families, err := repository.Get[family.Repository](txUow)
		require.NoError(err)
		assert.NotNil(families)

		members, err := repository.Get[member.Repository](txUow)
		require.NoError(err)
		assert.NotNil(members)

		invitations, err := repository.Get[invitation.Repository](txUow)
		require.NoError(err)
		assert.NotNil(invitations)

		users, err := repository.Get[user.Repository](txUow)
		require.NoError(err)
		assert.NotNil(users)
		return nil
	})
	assert.NoError(err)
	assert.NoError(mock.ExpectationsWereMet())
}

func TestUoW_RollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	uow := NewUoW(db)
	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := uow.Do(context.Background(), func(repository.UnitOfWork) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUoW_GetRepositoryOutsideTransaction(t *testing.T) {
	db, _ := newMockDB(t)
	uow := NewUoW(db)

	repo, err := repository.Get[user.Repository](uow)
	require.NoError(t, err)
	assert.NotNil(t, repo)
}

func TestUoW_UnsupportedRepository(t *testing.T) {
	db, _ := newMockDB(t)
	uow := NewUoW(db)

	_, err := uow.GetRepository(reflect.TypeOf((*error)(nil)).Elem())
	assert.Error(t, err)
}
