package eventbus

import (
	"context"
	"log/slog"
	"sync"

	"github.com/amirasaad/networth/pkg/domain/events"
	"github.com/amirasaad/networth/pkg/eventbus"
)

// MemoryEventBus dispatches events synchronously to registered handlers.
type MemoryEventBus struct {
	handlers  map[events.EventType][]eventbus.HandlerFunc
	mu        sync.RWMutex
	logger    *slog.Logger
	published []events.Event
}

// NewWithMemory creates a new in-memory event bus.
func NewWithMemory(logger *slog.Logger) *MemoryEventBus {
	return &MemoryEventBus{
		handlers:  make(map[events.EventType][]eventbus.HandlerFunc),
		logger:    logger.With("bus", "memory"),
		published: make([]events.Event, 0),
	}
}

// Register adds a handler for eventType.
func (b *MemoryEventBus) Register(eventType events.EventType, handler eventbus.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Emit dispatches e to every handler registered for its type. A failing or
// panicking handler is logged and does not stop the others.
func (b *MemoryEventBus) Emit(ctx context.Context, e events.Event) error {
	eventType := events.EventType(e.Type())
	b.mu.Lock()
	handlers := append([]eventbus.HandlerFunc(nil), b.handlers[eventType]...)
	b.published = append(b.published, e)
	b.mu.Unlock()

	for _, handler := range handlers {
		b.dispatch(ctx, handler, e)
	}
	return nil
}

func (b *MemoryEventBus) dispatch(ctx context.Context, handler eventbus.HandlerFunc, e events.Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("panic recovered in event handler", "type", e.Type(), "panic", r)
		}
	}()
	if err := handler(ctx, e); err != nil {
		b.logger.Error("failed to process event", "type", e.Type(), "error", err)
	}
}

// ClearPublished clears the list of published events. This is useful for testing.
func (b *MemoryEventBus) ClearPublished() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.published = make([]events.Event, 0)
}

// Published returns a copy of the events emitted so far.
func (b *MemoryEventBus) Published() []events.Event {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]events.Event(nil), b.published...)
}

var _ eventbus.Bus = (*MemoryEventBus)(nil)
