// Package metrics exposes prometheus collectors fed from domain events.
package metrics

import (
	"context"
	"net/http"

	"github.com/amirasaad/networth/pkg/domain/events"
	"github.com/amirasaad/networth/pkg/eventbus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector counts domain events and tracks the latest recorded net worth.
type Collector struct {
	registry     *prometheus.Registry
	eventsTotal  *prometheus.CounterVec
	lastNetWorth prometheus.Gauge
}

// New creates a collector on its own registry, with the Go runtime and
// process collectors attached.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		eventsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "networth",
			Name:      "domain_events_total",
			Help:      "Number of domain events emitted, by type.",
		}, []string{"type"}),
		lastNetWorth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "networth",
			Name:      "last_snapshot_net_worth",
			Help:      "Net worth of the most recently recorded snapshot.",
		}),
	}
	c.registry.MustRegister(
		c.eventsTotal,
		c.lastNetWorth,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	for _, et := range events.AllEventTypes {
		c.eventsTotal.WithLabelValues(et.String())
	}
	return c
}

// Subscribe registers the collector on bus for every event type.
func (c *Collector) Subscribe(bus eventbus.Bus) {
	for _, et := range events.AllEventTypes {
		bus.Register(et, c.observe)
	}
}

func (c *Collector) observe(_ context.Context, e events.Event) error {
	c.eventsTotal.WithLabelValues(e.Type()).Inc()
	if taken, ok := e.(events.SnapshotTaken); ok {
		c.lastNetWorth.Set(taken.NetWorth.InexactFloat64())
	}
	return nil
}

// Registry exposes the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the collected metrics in the prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}
