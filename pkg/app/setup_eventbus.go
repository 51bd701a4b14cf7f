package app

import (
	"context"

	"github.com/amirasaad/networth/pkg/domain/events"
)

// setupEventBus registers an audit log line for every domain event.
func (a *App) setupEventBus() {
	bus := a.Deps.EventBus
	if bus == nil {
		return
	}
	logger := a.Deps.Logger.With("handler", "audit")
	for _, eventType := range events.AllEventTypes {
		bus.Register(eventType, func(ctx context.Context, e events.Event) error {
			logger.Info("domain event", "type", e.Type())
			return nil
		})
	}
}
