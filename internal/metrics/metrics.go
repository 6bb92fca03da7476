// Package metrics declares the Prometheus instrumentation exported by the
// synthesis service: latency histograms, phoneme/error counters, and a
// gauge for active streaming sessions.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SynthesisDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "synthesis_duration_seconds",
		Help:    "Wall-clock time to synthesize one request, by language",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
	}, []string{"language"})

	PhonemesEmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "phonemes_emitted_total",
		Help: "Total phoneme tokens emitted by the G2P converter",
	}, []string{"language"})

	G2PRuleMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "g2p_rule_misses_total",
		Help: "Characters the G2P engine could not match against any rule and skipped",
	}, []string{"language"})

	Errors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "errors_total",
		Help: "Synthesizer errors by kind",
	}, []string{"kind"})

	StreamsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "streams_active",
		Help: "Currently open streaming synthesis sessions",
	})

	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "requests_total",
		Help: "HTTP requests received, by route and status code",
	}, []string{"route", "status"})
)
