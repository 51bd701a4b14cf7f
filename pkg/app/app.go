package app

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/amirasaad/networth/pkg/config"
	"github.com/amirasaad/networth/pkg/eventbus"
	"github.com/amirasaad/networth/pkg/repository"
	"github.com/amirasaad/networth/pkg/service/auth"
	"github.com/amirasaad/networth/pkg/service/family"
	"github.com/amirasaad/networth/pkg/service/ledger"
	"github.com/amirasaad/networth/pkg/service/snapshot"
	"github.com/amirasaad/networth/pkg/service/user"
)

// Deps contains the infrastructure the services are built from.
type Deps struct {
	Uow      repository.UnitOfWork
	EventBus eventbus.Bus
	Logger   *slog.Logger
	// Metrics serves the prometheus exposition. Nil disables /metrics.
	Metrics http.Handler
}

type App struct {
	Deps            *Deps
	Config          *config.App
	AuthService     *auth.Service
	UserService     *user.Service
	LedgerService   *ledger.Service
	SnapshotService *snapshot.Service
	FamilyService   *family.Service
}

func New(deps *Deps, cfg *config.App) *App {
	app := &App{
		Deps:   deps,
		Config: cfg,
	}
	app.setupEventBus()

	authMap := map[string]func() *auth.Service{
		"jwt": func() *auth.Service {
			return auth.NewWithJWT(deps.Uow, cfg.Auth.Jwt, deps.Logger)
		},
	}
	if authFactory, ok := authMap[cfg.Auth.Strategy]; ok {
		app.AuthService = authFactory()
	} else {
		app.AuthService = auth.NewWithBasic(deps.Uow, deps.Logger)
	}

	var ttl time.Duration
	if cfg.Invitation != nil {
		ttl = cfg.Invitation.TTL
	}
	app.UserService = user.New(deps.Uow, deps.EventBus, deps.Logger)
	app.LedgerService = ledger.New(deps.Uow, deps.EventBus, deps.Logger)
	app.SnapshotService = snapshot.New(deps.Uow, deps.EventBus, deps.Logger)
	app.FamilyService = family.New(deps.Uow, deps.EventBus, deps.Logger, ttl)
	return app
}
