package repository

import (
	"context"
	"fmt"
	"reflect"
)

// UnitOfWork defines the contract for transactional work and type-safe repository access.
//
// Do runs fn inside one transaction. Repositories obtained from the UnitOfWork
// passed to fn share that transaction, so every write inside fn commits or
// rolls back together.
//
// Example usage:
//
//	repo, err := repository.Get[account.Repository](uow)
type UnitOfWork interface {
	// Do executes the given function within a transaction boundary.
	// If the function returns an error, the transaction is rolled back.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	// GetRepository returns a repository of the requested interface type,
	// bound to the current transaction when called inside Do.
	GetRepository(repoType reflect.Type) (any, error)
}

// Get resolves the repository interface T from uow.
func Get[T any](uow UnitOfWork) (T, error) {
	var zero T
	repoType := reflect.TypeOf((*T)(nil)).Elem()
	repoAny, err := uow.GetRepository(repoType)
	if err != nil {
		return zero, fmt.Errorf("failed to get repository %v: %w", repoType, err)
	}
	repo, ok := repoAny.(T)
	if !ok {
		return zero, fmt.Errorf("invalid repository type for %v: %T", repoType, repoAny)
	}
	return repo, nil
}
