package metrics

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	infra_eventbus "github.com/amirasaad/networth/infra/eventbus"
	"github.com/amirasaad/networth/pkg/domain/events"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_CountsEmittedEvents(t *testing.T) {
	bus := infra_eventbus.NewWithMemory(slog.New(slog.NewTextHandler(io.Discard, nil)))
	c := New()
	c.Subscribe(bus)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, bus.Emit(ctx, events.AccountChanged{
		Meta: events.NewMeta(userID),
		Kind: events.EventTypeAccountAdded,
	}))
	require.NoError(t, bus.Emit(ctx, events.AccountChanged{
		Meta: events.NewMeta(userID),
		Kind: events.EventTypeAccountAdded,
	}))
	require.NoError(t, bus.Emit(ctx, events.SnapshotTaken{
		Meta:     events.NewMeta(userID),
		NetWorth: decimal.NewFromInt(60),
	}))

	added := c.eventsTotal.WithLabelValues(events.EventTypeAccountAdded.String())
	assert.Equal(t, 2.0, testutil.ToFloat64(added))
	taken := c.eventsTotal.WithLabelValues(events.EventTypeSnapshotTaken.String())
	assert.Equal(t, 1.0, testutil.ToFloat64(taken))
	assert.Equal(t, 60.0, testutil.ToFloat64(c.lastNetWorth))
}

func TestCollector_Handler(t *testing.T) {
	c := New()
	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body := rec.Body.String()
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, body, "networth_domain_events_total")
	assert.Contains(t, body, `type="Account.Added"`)
}
