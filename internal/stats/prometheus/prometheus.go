// Package prometheus provides a Prometheus-based stats collector.
package prometheus

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hoardcache/hoard/internal/stats"
)

// Collector implements stats.Collector using Prometheus metrics. Metrics
// are created lazily the first time a name is seen.
type Collector struct {
	registry prometheus.Registerer

	mu       sync.Mutex
	counters map[string]prometheus.Counter
	gauges   map[string]prometheus.Gauge
}

// Compile-time check that Collector implements stats.Collector.
var _ stats.Collector = (*Collector)(nil)

// New creates a new Prometheus collector.
// If registry is nil, prometheus.DefaultRegisterer is used.
func New(registry prometheus.Registerer) *Collector {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	return &Collector{
		registry: registry,
		counters: make(map[string]prometheus.Counter),
		gauges:   make(map[string]prometheus.Gauge),
	}
}

// IncCounter increments a counter metric.
func (c *Collector) IncCounter(name string, delta int64) {
	c.counter(name).Add(float64(delta))
}

// SetGauge sets a gauge metric.
func (c *Collector) SetGauge(name string, value int64) {
	c.gauge(name).Set(float64(value))
}

func (c *Collector) counter(name string) prometheus.Counter {
	c.mu.Lock()
	defer c.mu.Unlock()

	if counter, ok := c.counters[name]; ok {
		return counter
	}

	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: name, Help: name})
	if existing, ok := c.register(counter); ok {
		if ec, ok := existing.(prometheus.Counter); ok {
			counter = ec
		}
	}
	c.counters[name] = counter
	return counter
}

func (c *Collector) gauge(name string) prometheus.Gauge {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gauge, ok := c.gauges[name]; ok {
		return gauge
	}

	gauge := prometheus.NewGauge(prometheus.GaugeOpts{Name: name, Help: name})
	if existing, ok := c.register(gauge); ok {
		if eg, ok := existing.(prometheus.Gauge); ok {
			gauge = eg
		}
	}
	c.gauges[name] = gauge
	return gauge
}

// register registers m, returning the already-registered collector if this
// name was registered before (e.g. by another Collector on the same
// registry).
func (c *Collector) register(m prometheus.Collector) (prometheus.Collector, bool) {
	if err := c.registry.Register(m); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector, true
		}
	}
	return nil, false
}
