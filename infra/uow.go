package infra

import (
	"context"
	"fmt"
	"reflect"

	accountrepo "github.com/amirasaad/networth/infra/repository/account"
	familyrepo "github.com/amirasaad/networth/infra/repository/family"
	invitationrepo "github.com/amirasaad/networth/infra/repository/invitation"
	memberrepo "github.com/amirasaad/networth/infra/repository/member"
	snapshotrepo "github.com/amirasaad/networth/infra/repository/snapshot"
	userrepo "github.com/amirasaad/networth/infra/repository/user"
	"github.com/amirasaad/networth/pkg/repository"
	"github.com/amirasaad/networth/pkg/repository/account"
	"github.com/amirasaad/networth/pkg/repository/family"
	"github.com/amirasaad/networth/pkg/repository/invitation"
	"github.com/amirasaad/networth/pkg/repository/member"
	"github.com/amirasaad/networth/pkg/repository/snapshot"
	"github.com/amirasaad/networth/pkg/repository/user"
	"gorm.io/gorm"
)

type constructor func(*gorm.DB) any

// UoW provides a transaction boundary and repository access in one abstraction.
// Repositories fetched inside Do share the transaction's session.
type UoW struct {
	db       *gorm.DB
	tx       *gorm.DB
	registry map[reflect.Type]constructor
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{
		db: db,
		registry: map[reflect.Type]constructor{
			typeOf[account.Repository]():    func(db *gorm.DB) any { return accountrepo.New(db) },
			typeOf[snapshot.Repository]():   func(db *gorm.DB) any { return snapshotrepo.New(db) },
			typeOf[family.Repository]():     func(db *gorm.DB) any { return familyrepo.New(db) },
			typeOf[member.Repository]():     func(db *gorm.DB) any { return memberrepo.New(db) },
			typeOf[invitation.Repository](): func(db *gorm.DB) any { return invitationrepo.New(db) },
			typeOf[user.Repository]():       func(db *gorm.DB) any { return userrepo.New(db) },
		},
	}
}

// Do runs fn inside a database transaction. Returning an error rolls it back.
func (u *UoW) Do(
	ctx context.Context,
	fn func(uow repository.UnitOfWork) error,
) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx, registry: u.registry})
	})
}

// GetRepository builds the repository registered for repoType, bound to the
// current transaction when there is one.
func (u *UoW) GetRepository(repoType reflect.Type) (any, error) {
	build, ok := u.registry[repoType]
	if !ok {
		return nil, fmt.Errorf("unsupported repository type: %v", repoType)
	}
	if u.tx != nil {
		return build(u.tx), nil
	}
	return build(u.db), nil
}

var _ repository.UnitOfWork = (*UoW)(nil)
