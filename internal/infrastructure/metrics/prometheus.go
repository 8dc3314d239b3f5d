// Package metrics exports resolution telemetry as Prometheus counters.
// The resolved-locale label makes translation coverage gaps visible: a hit
// where resolved != requested means the requested locale is missing the key.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"subloc/internal/ports/output"
)

var _ output.ResolutionMetrics = (*Prometheus)(nil)

type Prometheus struct {
	hits    *prometheus.CounterVec
	misses  *prometheus.CounterVec
	reloads *prometheus.CounterVec
}

// NewPrometheus registers the resolution counters with reg.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	factory := promauto.With(reg)
	return &Prometheus{
		hits: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "subloc",
			Name:      "resolutions_total",
			Help:      "Lookups resolved, by requested and resolving locale.",
		}, []string{"requested", "resolved"}),
		misses: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "subloc",
			Name:      "resolution_misses_total",
			Help:      "Lookups no catalog in the fallback chain could satisfy.",
		}, []string{"requested"}),
		reloads: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "subloc",
			Name:      "catalog_reloads_total",
			Help:      "Atomic catalog swaps, by locale.",
		}, []string{"locale"}),
	}
}

func (p *Prometheus) ResolutionHit(requestedLocale, resolvedLocale string) {
	p.hits.WithLabelValues(requestedLocale, resolvedLocale).Inc()
}

func (p *Prometheus) ResolutionMiss(requestedLocale string) {
	p.misses.WithLabelValues(requestedLocale).Inc()
}

func (p *Prometheus) CatalogReloaded(locale string) {
	p.reloads.WithLabelValues(locale).Inc()
}
