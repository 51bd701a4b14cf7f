package app_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	infra_eventbus "github.com/amirasaad/networth/infra/eventbus"
	"github.com/amirasaad/networth/internal/fixtures/mocks"
	"github.com/amirasaad/networth/pkg/app"
	"github.com/amirasaad/networth/pkg/config"
	"github.com/amirasaad/networth/pkg/domain/events"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	bus := infra_eventbus.NewWithMemory(logger)
	deps := &app.Deps{Uow: mocks.NewUnitOfWork(t), EventBus: bus, Logger: logger}
	cfg := &config.App{
		Auth:       &config.Auth{Strategy: "jwt", Jwt: &config.Jwt{Secret: "s", Expiry: time.Hour}},
		Invitation: &config.Invitation{TTL: time.Hour},
	}

	a := app.New(deps, cfg)
	assert.NotNil(t, a.AuthService)
	assert.NotNil(t, a.UserService)
	assert.NotNil(t, a.LedgerService)
	assert.NotNil(t, a.SnapshotService)
	assert.NotNil(t, a.FamilyService)

	// The audit handler is registered for every event type.
	require.NoError(t, bus.Emit(context.Background(), events.LedgerCleared{Meta: events.NewMeta(uuid.New())}))
	assert.Contains(t, buf.String(), "domain event")
	assert.Contains(t, buf.String(), events.EventTypeLedgerCleared.String())
}

func TestNew_UnknownStrategyFallsBackToBasic(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	deps := &app.Deps{Uow: mocks.NewUnitOfWork(t), Logger: logger}
	a := app.New(deps, &config.App{Auth: &config.Auth{Strategy: "basic"}})
	assert.NotNil(t, a.AuthService)
}
