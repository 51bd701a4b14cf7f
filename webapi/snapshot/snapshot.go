// Package snapshot serves net-worth snapshots and their trend.
package snapshot

import (
	"time"

	"github.com/amirasaad/networth/pkg/config"
	"github.com/amirasaad/networth/pkg/domain/snapshot"
	"github.com/amirasaad/networth/pkg/middleware"
	"github.com/amirasaad/networth/pkg/service/ledger"
	snapshotsvc "github.com/amirasaad/networth/pkg/service/snapshot"
	"github.com/amirasaad/networth/pkg/session"
	"github.com/amirasaad/networth/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// SnapshotDTO is the API representation of a recorded snapshot.
type SnapshotDTO struct {
	ID               string           `json:"id"`
	Date             string           `json:"date"`
	TotalAssets      decimal.Decimal  `json:"totalAssets"`
	TotalLiabilities decimal.Decimal  `json:"totalLiabilities"`
	NetWorth         decimal.Decimal  `json:"netWorth"`
	Breakdown        []snapshot.Entry `json:"breakdown"`
	CreatedAt        time.Time        `json:"createdAt"`
}

func toDTO(s *snapshot.Snapshot) SnapshotDTO {
	breakdown := s.Breakdown
	if breakdown == nil {
		breakdown = []snapshot.Entry{}
	}
	return SnapshotDTO{
		ID:               s.ID.String(),
		Date:             s.Date.Format(snapshot.DateLayout),
		TotalAssets:      s.TotalAssets,
		TotalLiabilities: s.TotalLiabilities,
		NetWorth:         s.NetWorth,
		Breakdown:        breakdown,
		CreatedAt:        s.CreatedAt,
	}
}

// Routes registers the snapshot endpoints.
//
//   - POST /snapshots       : record today's totals
//   - GET  /snapshots       : history sorted by date, oldest first
//   - GET  /snapshots/trend : chartable series, insufficient below two points
func Routes(app *fiber.App, snapshotSvc *snapshotsvc.Service, ledgerSvc *ledger.Service, jwt *config.Jwt) {
	protected := middleware.JwtProtected(jwt)
	app.Post("/snapshots", protected, common.WithSession(Take(snapshotSvc, ledgerSvc)))
	app.Get("/snapshots", protected, common.WithSession(History(snapshotSvc)))
	app.Get("/snapshots/trend", protected, common.WithSession(Trend(snapshotSvc)))
}

func Take(snapshotSvc *snapshotsvc.Service, ledgerSvc *ledger.Service) func(*fiber.Ctx, session.Session) error {
	return func(c *fiber.Ctx, sess session.Session) error {
		ctx := c.UserContext()
		book, err := ledgerSvc.Open(ctx, sess)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to load accounts", err)
		}
		rec, err := snapshotSvc.Open(ctx, sess)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to load snapshots", err)
		}
		snap, err := rec.TakeSnapshot(ctx, book.Ledger())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to record snapshot", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Snapshot recorded", toDTO(snap))
	}
}

func History(svc *snapshotsvc.Service) func(*fiber.Ctx, session.Session) error {
	return func(c *fiber.Ctx, sess session.Session) error {
		rec, err := svc.Open(c.UserContext(), sess)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to load snapshots", err)
		}
		history := rec.History()
		out := make([]SnapshotDTO, 0, len(history))
		for _, s := range history {
			out = append(out, toDTO(s))
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Snapshots", out)
	}
}

func Trend(svc *snapshotsvc.Service) func(*fiber.Ctx, session.Session) error {
	return func(c *fiber.Ctx, sess session.Session) error {
		rec, err := svc.Open(c.UserContext(), sess)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to load snapshots", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Trend", rec.Trend())
	}
}
