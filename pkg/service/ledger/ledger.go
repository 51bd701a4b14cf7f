// Package ledger implements the account ledger use cases for a signed-in user.
package ledger

import (
	"context"
	"log/slog"
	"time"

	"github.com/amirasaad/networth/pkg/domain/account"
	"github.com/amirasaad/networth/pkg/domain/category"
	"github.com/amirasaad/networth/pkg/domain/events"
	"github.com/amirasaad/networth/pkg/eventbus"
	"github.com/amirasaad/networth/pkg/repository"
	repoaccount "github.com/amirasaad/networth/pkg/repository/account"
	reposnapshot "github.com/amirasaad/networth/pkg/repository/snapshot"
	"github.com/amirasaad/networth/pkg/session"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service opens ledger books. It holds no per-user state.
type Service struct {
	uow    repository.UnitOfWork
	bus    eventbus.Bus
	logger *slog.Logger
	now    func() time.Time
}

// New creates a ledger Service.
func New(
	uow repository.UnitOfWork,
	bus eventbus.Bus,
	logger *slog.Logger,
) *Service {
	return &Service{
		uow:    uow,
		bus:    bus,
		logger: logger.With("service", "ledger"),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Book is one session's view of its accounts. Writes reach the store first and
// only then change the in-memory ledger. A Book is not safe for concurrent use.
type Book struct {
	svc    *Service
	sess   session.Session
	ledger *account.Ledger
	logger *slog.Logger
}

// Open loads every account owned by the session's user.
func (s *Service) Open(ctx context.Context, sess session.Session) (*Book, error) {
	if !sess.Valid() {
		return nil, session.ErrNoSession
	}
	log := s.logger.With("userID", sess.UserID)
	log.Debug("Open called")

	repo, err := repository.Get[repoaccount.Repository](s.uow)
	if err != nil {
		return nil, err
	}
	ledger := account.NewLedger()
	for _, kind := range []category.Kind{category.KindAsset, category.KindLiability} {
		rows, err := repo.ListByUser(ctx, kind, sess.UserID)
		if err != nil {
			log.Error("failed to load accounts", "kind", kind, "error", err)
			return nil, err
		}
		for _, row := range rows {
			ledger.Add(fromReadDTO(row))
		}
	}
	log.Debug("ledger loaded", "accounts", ledger.Len())
	return &Book{svc: s, sess: sess, ledger: ledger, logger: log}, nil
}

// Input holds the fields of a new account.
type Input struct {
	Category     category.Key
	Name         string
	Amount       decimal.Decimal
	Note         string
	Icon         string
	Platform     string
	InterestRate *decimal.Decimal
	DueDate      *time.Time
}

// AddAccount validates in, persists it and appends it to the ledger.
func (b *Book) AddAccount(
	ctx context.Context,
	kind category.Kind,
	in Input,
) (*account.Account, error) {
	log := b.logger.With("op", "AddAccount", "kind", kind, "category", in.Category)
	log.Debug("AddAccount called")

	acc, err := account.New().
		WithUserID(b.sess.UserID).
		WithKind(kind).
		WithCategory(in.Category).
		WithName(in.Name).
		WithAmount(in.Amount).
		WithNote(in.Note).
		WithIcon(in.Icon).
		WithPlatform(in.Platform).
		WithInterestRate(in.InterestRate).
		WithDueDate(in.DueDate).
		WithNow(b.svc.now()).
		Build()
	if err != nil {
		log.Debug("rejected account", "error", err)
		return nil, err
	}

	repo, err := repository.Get[repoaccount.Repository](b.svc.uow)
	if err != nil {
		return nil, err
	}
	if err := repo.Create(ctx, toCreateDTO(acc)); err != nil {
		log.Error("failed to persist account", "error", err)
		return nil, err
	}
	b.ledger.Add(acc)
	log.Info("account added", "accountID", acc.ID)

	b.emit(ctx, events.AccountChanged{
		Meta:      events.NewMeta(b.sess.UserID),
		Kind:      events.EventTypeAccountAdded,
		AccountID: acc.ID,
		Category:  acc.Category.String(),
		Amount:    acc.Amount,
	})
	return acc, nil
}

// UpdateAccount merges p into the account with id. The account must belong
// to the session's ledger and p must change at least one field.
func (b *Book) UpdateAccount(
	ctx context.Context,
	id uuid.UUID,
	p account.Patch,
) (*account.Account, error) {
	log := b.logger.With("op", "UpdateAccount", "accountID", id)
	log.Debug("UpdateAccount called")

	if p.Empty() {
		return nil, account.ErrEmptyPatch
	}
	current, ok := b.ledger.Find(id)
	if !ok {
		return nil, account.ErrAccountNotFound
	}
	merged, err := current.Apply(p, b.svc.now())
	if err != nil {
		log.Debug("rejected update", "error", err)
		return nil, err
	}

	repo, err := repository.Get[repoaccount.Repository](b.svc.uow)
	if err != nil {
		return nil, err
	}
	if err := repo.Update(ctx, current.Kind, b.sess.UserID, id, toUpdateDTO(p, merged)); err != nil {
		log.Error("failed to persist update", "error", err)
		return nil, err
	}
	b.ledger.Replace(merged)
	log.Info("account updated")

	b.emit(ctx, events.AccountChanged{
		Meta:      events.NewMeta(b.sess.UserID),
		Kind:      events.EventTypeAccountUpdated,
		AccountID: merged.ID,
		Category:  merged.Category.String(),
		Amount:    merged.Amount,
	})
	return merged, nil
}

// DeleteAccount removes the account with id. Deleting an unknown id is a no-op.
func (b *Book) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	log := b.logger.With("op", "DeleteAccount", "accountID", id)
	log.Debug("DeleteAccount called")

	current, ok := b.ledger.Find(id)
	if !ok {
		log.Debug("account not in ledger, nothing to delete")
		return nil
	}
	repo, err := repository.Get[repoaccount.Repository](b.svc.uow)
	if err != nil {
		return err
	}
	if err := repo.Delete(ctx, current.Kind, b.sess.UserID, id); err != nil {
		log.Error("failed to delete account", "error", err)
		return err
	}
	b.ledger.Remove(id)
	log.Info("account deleted")

	b.emit(ctx, events.AccountChanged{
		Meta:      events.NewMeta(b.sess.UserID),
		Kind:      events.EventTypeAccountDeleted,
		AccountID: id,
		Category:  current.Category.String(),
	})
	return nil
}

// ClearAll deletes every account and snapshot of the user in one transaction.
func (b *Book) ClearAll(ctx context.Context) error {
	log := b.logger.With("op", "ClearAll")
	log.Debug("ClearAll called")

	err := b.svc.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := repository.Get[repoaccount.Repository](uow)
		if err != nil {
			return err
		}
		snapshots, err := repository.Get[reposnapshot.Repository](uow)
		if err != nil {
			return err
		}
		if err := accounts.DeleteAllByUser(ctx, b.sess.UserID); err != nil {
			return err
		}
		return snapshots.DeleteAllByUser(ctx, b.sess.UserID)
	})
	if err != nil {
		log.Error("failed to clear data", "error", err)
		return err
	}
	b.ledger.Clear()
	log.Info("all data cleared")

	b.emit(ctx, events.LedgerCleared{Meta: events.NewMeta(b.sess.UserID)})
	return nil
}

// Ledger exposes the in-memory ledger for read-only aggregation.
func (b *Book) Ledger() *account.Ledger { return b.ledger }

// Session returns the session the book was opened for.
func (b *Book) Session() session.Session { return b.sess }

func (b *Book) Totals() account.Totals { return b.ledger.Totals() }

func (b *Book) Filter(key string) []*account.Account { return b.ledger.Filter(key) }

func (b *Book) AssetRatio() decimal.Decimal { return b.ledger.AssetRatio() }

func (b *Book) Allocation(kind category.Kind) []account.Slice { return b.ledger.Allocation(kind) }

func (b *Book) emit(ctx context.Context, e events.Event) {
	if b.svc.bus == nil {
		return
	}
	if err := b.svc.bus.Emit(ctx, e); err != nil {
		b.logger.Warn("failed to emit event", "type", e.Type(), "error", err)
	}
}
