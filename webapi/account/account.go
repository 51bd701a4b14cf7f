// Package account serves the caller's asset and liability ledger.
package account

import (
	"github.com/amirasaad/networth/pkg/config"
	"github.com/amirasaad/networth/pkg/domain/category"
	"github.com/amirasaad/networth/pkg/middleware"
	"github.com/amirasaad/networth/pkg/service/ledger"
	"github.com/amirasaad/networth/pkg/session"
	"github.com/amirasaad/networth/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the ledger endpoints. All require a valid token.
//
//   - GET    /accounts?category=all|<key> : filtered assets and liabilities
//   - POST   /accounts/assets             : add an asset
//   - POST   /accounts/liabilities        : add a liability
//   - GET    /accounts/summary            : totals and asset ratio
//   - GET    /accounts/allocation?kind=   : per-category totals of one kind
//   - PATCH  /accounts/:id                : update an account
//   - DELETE /accounts/:id                : delete an account
//   - DELETE /data                        : delete every account and snapshot
//   - POST   /data/demo                   : replace all data with a sample portfolio
func Routes(app *fiber.App, ledgerSvc *ledger.Service, jwt *config.Jwt) {
	protected := middleware.JwtProtected(jwt)
	app.Get("/accounts", protected, common.WithSession(List(ledgerSvc)))
	app.Post("/accounts/assets", protected, common.WithSession(Create(ledgerSvc, category.KindAsset)))
	app.Post("/accounts/liabilities", protected, common.WithSession(Create(ledgerSvc, category.KindLiability)))
	app.Get("/accounts/summary", protected, common.WithSession(Summary(ledgerSvc)))
	app.Get("/accounts/allocation", protected, common.WithSession(Allocation(ledgerSvc)))
	app.Patch("/accounts/:id", protected, common.WithSession(Update(ledgerSvc)))
	app.Delete("/accounts/:id", protected, common.WithSession(Delete(ledgerSvc)))
	app.Delete("/data", protected, common.WithSession(ClearAll(ledgerSvc)))
	app.Post("/data/demo", protected, common.WithSession(LoadDemo(ledgerSvc)))
}

type handler = func(*fiber.Ctx, session.Session) error

// openBook loads the caller's ledger, writing the failure response itself.
func openBook(c *fiber.Ctx, svc *ledger.Service, sess session.Session) (*ledger.Book, error) {
	book, err := svc.Open(c.UserContext(), sess)
	if err != nil {
		return nil, common.ProblemDetailsJSON(c, "Failed to load accounts", err)
	}
	return book, nil
}

func List(svc *ledger.Service) handler {
	return func(c *fiber.Ctx, sess session.Session) error {
		book, err := openBook(c, svc, sess)
		if book == nil {
			return err
		}
		key := c.Query("category", category.All)
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Accounts", AccountListDTO{
			Accounts:   toAccountDTOs(book.Filter(key)),
			Categories: book.Ledger().UsedCategories(),
		})
	}
}

func Create(svc *ledger.Service, kind category.Kind) handler {
	return func(c *fiber.Ctx, sess session.Session) error {
		input, err := common.BindAndValidate[CreateAccountRequest](c)
		if input == nil {
			return err
		}
		book, err := openBook(c, svc, sess)
		if book == nil {
			return err
		}
		a, err := book.AddAccount(c.UserContext(), kind, ledger.Input{
			Category:     category.Key(input.Category),
			Name:         input.Name,
			Amount:       *input.Amount,
			Note:         input.Note,
			Icon:         input.Icon,
			Platform:     input.Platform,
			InterestRate: input.InterestRate,
			DueDate:      parseDate(input.DueDate),
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to add account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Account added", toAccountDTO(a))
	}
}

func Update(svc *ledger.Service) handler {
	return func(c *fiber.Ctx, sess session.Session) error {
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		input, err := common.BindAndValidate[UpdateAccountRequest](c)
		if input == nil {
			return err
		}
		book, err := openBook(c, svc, sess)
		if book == nil {
			return err
		}
		patch, err := input.toPatch()
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid request body", err)
		}
		a, err := book.UpdateAccount(c.UserContext(), id, patch)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to update account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account updated", toAccountDTO(a))
	}
}

// Delete answers 204 whether or not the account existed.
func Delete(svc *ledger.Service) handler {
	return func(c *fiber.Ctx, sess session.Session) error {
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		book, err := openBook(c, svc, sess)
		if book == nil {
			return err
		}
		if err := book.DeleteAccount(c.UserContext(), id); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to delete account", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func Summary(svc *ledger.Service) handler {
	return func(c *fiber.Ctx, sess session.Session) error {
		book, err := openBook(c, svc, sess)
		if book == nil {
			return err
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Summary", SummaryDTO{
			Totals:     book.Totals(),
			AssetRatio: book.AssetRatio(),
		})
	}
}

func Allocation(svc *ledger.Service) handler {
	return func(c *fiber.Ctx, sess session.Session) error {
		kind, err := category.ParseKind(c.Query("kind", string(category.KindAsset)))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid kind", err)
		}
		book, err := openBook(c, svc, sess)
		if book == nil {
			return err
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Allocation", book.Allocation(kind))
	}
}

func ClearAll(svc *ledger.Service) handler {
	return func(c *fiber.Ctx, sess session.Session) error {
		book, err := openBook(c, svc, sess)
		if book == nil {
			return err
		}
		if err := book.ClearAll(c.UserContext()); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to clear data", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// LoadDemo answers with the seeded account list.
func LoadDemo(svc *ledger.Service) handler {
	return func(c *fiber.Ctx, sess session.Session) error {
		book, err := openBook(c, svc, sess)
		if book == nil {
			return err
		}
		if err := book.LoadDemo(c.UserContext()); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to load demo data", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Demo data loaded", AccountListDTO{
			Accounts:   toAccountDTOs(book.Filter(category.All)),
			Categories: book.Ledger().UsedCategories(),
		})
	}
}
