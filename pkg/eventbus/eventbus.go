// Package eventbus defines how services publish domain events.
package eventbus

import (
	"context"

	"github.com/amirasaad/networth/pkg/domain/events"
)

// HandlerFunc processes one event. Returned errors are logged by the bus, never
// propagated to the publisher.
type HandlerFunc func(ctx context.Context, e events.Event) error

// Bus is the publish/subscribe contract.
type Bus interface {
	Register(eventType events.EventType, handler HandlerFunc)
	Emit(ctx context.Context, e events.Event) error
}
