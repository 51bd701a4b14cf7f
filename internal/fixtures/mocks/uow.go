// Package mocks holds testify mocks of the persistence contracts.
package mocks

import (
	"context"
	"reflect"

	"github.com/amirasaad/networth/pkg/repository"
	"github.com/stretchr/testify/mock"
)

// UnitOfWork is a mock of repository.UnitOfWork. Do runs fn against the mock
// itself unless an expectation returns an error.
type UnitOfWork struct {
	mock.Mock
}

func NewUnitOfWork(t interface {
	mock.TestingT
	Cleanup(func())
}) *UnitOfWork {
	m := &UnitOfWork{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *UnitOfWork) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	args := m.Called(ctx, fn)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(m)
}

func (m *UnitOfWork) GetRepository(repoType reflect.Type) (any, error) {
	args := m.Called(repoType)
	return args.Get(0), args.Error(1)
}

// RepoType is the reflect.Type key GetRepository is called with for T.
func RepoType[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

var _ repository.UnitOfWork = (*UnitOfWork)(nil)
