package ledger

import (
	"context"

	"github.com/amirasaad/networth/pkg/domain/account"
	"github.com/amirasaad/networth/pkg/domain/category"
	"github.com/amirasaad/networth/pkg/domain/events"
	"github.com/amirasaad/networth/pkg/repository"
	repoaccount "github.com/amirasaad/networth/pkg/repository/account"
	reposnapshot "github.com/amirasaad/networth/pkg/repository/snapshot"
	"github.com/shopspring/decimal"
)

type demoAccount struct {
	kind category.Kind
	Input
}

func demoRate(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

var demoAccounts = []demoAccount{
	{category.KindAsset, Input{Category: category.Deposit, Name: "Savings account", Amount: decimal.NewFromInt(150000), Platform: "City Bank"}},
	{category.KindAsset, Input{Category: category.Cash, Name: "Wallet balance", Amount: decimal.NewFromInt(8500), Platform: "PayWallet"}},
	{category.KindAsset, Input{Category: category.Fund, Name: "Index fund", Amount: decimal.NewFromInt(85000), Platform: "FundHub"}},
	{category.KindAsset, Input{Category: category.Stock, Name: "Tech shares", Amount: decimal.NewFromInt(45000), Platform: "Broker One"}},
	{category.KindAsset, Input{Category: category.RealEstate, Name: "Home", Amount: decimal.NewFromInt(3500000), Note: "Primary residence"}},
	{category.KindAsset, Input{Category: category.Vehicle, Name: "Car", Amount: decimal.NewFromInt(180000)}},
	{category.KindAsset, Input{Category: category.Insurance, Name: "Life policy cash value", Amount: decimal.NewFromInt(25000), Platform: "SafeLife"}},
	{category.KindLiability, Input{Category: category.Mortgage, Name: "Mortgage", Amount: decimal.NewFromInt(2200000), InterestRate: demoRate("4.2")}},
	{category.KindLiability, Input{Category: category.CreditCard, Name: "Credit card", Amount: decimal.NewFromInt(15000)}},
	{category.KindLiability, Input{Category: category.CarLoan, Name: "Car loan", Amount: decimal.NewFromInt(80000), InterestRate: demoRate("5.5")}},
}

// LoadDemo replaces every account and snapshot of the user with a sample
// portfolio of seven assets and three liabilities, in one transaction.
func (b *Book) LoadDemo(ctx context.Context) error {
	log := b.logger.With("op", "LoadDemo")
	log.Debug("LoadDemo called")

	now := b.svc.now()
	seeded := make([]*account.Account, 0, len(demoAccounts))
	for _, d := range demoAccounts {
		acc, err := account.New().
			WithUserID(b.sess.UserID).
			WithKind(d.kind).
			WithCategory(d.Category).
			WithName(d.Name).
			WithAmount(d.Amount).
			WithNote(d.Note).
			WithPlatform(d.Platform).
			WithInterestRate(d.InterestRate).
			WithNow(now).
			Build()
		if err != nil {
			return err
		}
		seeded = append(seeded, acc)
	}

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
		if err := snapshots.DeleteAllByUser(ctx, b.sess.UserID); err != nil {
			return err
		}
		for _, acc := range seeded {
			if err := accounts.Create(ctx, toCreateDTO(acc)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Error("failed to load demo data", "error", err)
		return err
	}

	b.ledger.Clear()
	for _, acc := range seeded {
		b.ledger.Add(acc)
	}
	log.Info("demo data loaded", "accounts", len(seeded))

	b.emit(ctx, events.LedgerCleared{Meta: events.NewMeta(b.sess.UserID)})
	for _, acc := range seeded {
		b.emit(ctx, events.AccountChanged{
			Meta:      events.NewMeta(b.sess.UserID),
			Kind:      events.EventTypeAccountAdded,
			AccountID: acc.ID,
			Category:  acc.Category.String(),
			Amount:    acc.Amount,
		})
	}
	return nil
}
