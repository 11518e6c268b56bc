package resolver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "assetpath"
	metricsSubsystem = "resolver"
)

// Metrics holds the resolver counters. A nil *Metrics records nothing.
type Metrics struct {
	hits     prometheus.Counter
	misses   prometheus.Counter
	shared   prometheus.Counter
	notFound prometheus.Counter
}

// NewMetrics creates the resolver counters and registers them with reg. A nil
// registerer leaves the counters unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	counter := func(name, help string) prometheus.Counter {
		return factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      name,
			Help:      help,
		})
	}
	return &Metrics{
		hits:     counter("cache_hits_total", "Number of resolutions answered from the memoization table."),
		misses:   counter("cache_misses_total", "Number of resolutions that had to walk the catalog."),
		shared:   counter("shared_total", "Number of misses that waited on a concurrent resolution of the same identifier."),
		notFound: counter("not_found_total", "Number of resolutions for undeclared identifiers."),
	}
}

func (m *Metrics) hit() {
	if m != nil {
		m.hits.Inc()
	}
}

func (m *Metrics) miss() {
	if m != nil {
		m.misses.Inc()
	}
}

func (m *Metrics) share() {
	if m != nil {
		m.shared.Inc()
	}
}

func (m *Metrics) missing() {
	if m != nil {
		m.notFound.Inc()
	}
}
