// Package metrics exposes conversion outcomes as Prometheus counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/viant/dateconv"
)

//untyped labels text, nil and unregistered sources
const untyped = "untyped"

// Metrics counts conversions by source kind, target kind and outcome
type Metrics struct {
	Conversions *prometheus.CounterVec
}

// New creates metrics registered with supplied registerer, nil uses prometheus.DefaultRegisterer
func New(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	return &Metrics{
		Conversions: promauto.With(registerer).NewCounterVec(prometheus.CounterOpts{
			Name: "dateconv_conversions_total",
			Help: "Total number of date conversions by source kind, target kind and outcome",
		}, []string{"source", "target", "outcome"}),
	}
}

// Observe implements dateconv.Observer
func (m *Metrics) Observe(source, target dateconv.Kind, outcome dateconv.Outcome) {
	m.Conversions.WithLabelValues(label(source), label(target), string(outcome)).Inc()
}

func label(kind dateconv.Kind) string {
	if kind == dateconv.KindInvalid {
		return untyped
	}
	return kind.String()
}
