// Package initializer builds the application's infrastructure from configuration.
package initializer

import (
	"fmt"
	"os"

	"github.com/amirasaad/networth/infra"
	infra_eventbus "github.com/amirasaad/networth/infra/eventbus"
	"github.com/amirasaad/networth/infra/metrics"
	"github.com/amirasaad/networth/pkg/app"
	"github.com/amirasaad/networth/pkg/config"
)

// InitializeDependencies opens the database, builds the unit of work and the
// in-memory event bus, and feeds domain events into the metrics collector.
func InitializeDependencies(cfg *config.App) (
	deps *app.Deps,
	err error,
) {
	logger := setupLogger(os.Stdout, cfg.Log)

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	bus := infra_eventbus.NewWithMemory(logger)
	collector := metrics.New()
	collector.Subscribe(bus)

	logger.Info("dependencies initialized", "env", cfg.Env)
	return &app.Deps{
		Uow:      infra.NewUoW(db),
		EventBus: bus,
		Logger:   logger,
		Metrics:  collector.Handler(),
	}, nil
}
