package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/chalklab/chalkline/pkg/domain"
)

// Metrics holds the Prometheus collectors fed by engine lifecycle hooks.
type Metrics struct {
	Solves        *prometheus.CounterVec
	SolveDuration *prometheus.HistogramVec
	TraceSteps    *prometheus.HistogramVec
	StepsPlayed   *prometheus.CounterVec
	Validations   *prometheus.CounterVec
}

// NewMetrics creates and registers the collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Solves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chalkline_solves_total",
				Help: "Total number of solve passes",
			},
			[]string{"algorithm"},
		),
		SolveDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "chalkline_solve_duration_seconds",
				Help: "Duration of solve passes",
			},
			[]string{"algorithm"},
		),
		TraceSteps: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "chalkline_trace_steps",
				Help:    "Number of steps per recorded trace",
				Buckets: prometheus.ExponentialBuckets(8, 2, 10),
			},
			[]string{"algorithm"},
		),
		StepsPlayed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chalkline_steps_played_total",
				Help: "Total number of steps executed by players",
			},
			[]string{"algorithm", "kind"},
		),
		Validations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chalkline_validations_total",
				Help: "Total number of monk-mode answer checks",
			},
			[]string{"algorithm", "mode", "result"},
		),
	}
	reg.MustRegister(m.Solves, m.SolveDuration, m.TraceSteps, m.StepsPlayed, m.Validations)
	return m
}

// Hooks returns lifecycle hooks that record into the collectors. Attach
// them to the engine, players and validators via their options.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnSolve: func(ctx context.Context, e *domain.SolveEvent) {
			m.Solves.WithLabelValues(e.Algorithm).Inc()
			m.SolveDuration.WithLabelValues(e.Algorithm).Observe(e.Duration.Seconds())
			m.TraceSteps.WithLabelValues(e.Algorithm).Observe(float64(e.Steps))
		},
		OnStepPlayed: func(ctx context.Context, e *domain.StepEvent) {
			m.StepsPlayed.WithLabelValues(e.Algorithm, string(e.Kind)).Inc()
		},
		OnValidation: func(ctx context.Context, e *domain.ValidationEvent) {
			result := "incorrect"
			if e.Correct {
				result = "correct"
			}
			m.Validations.WithLabelValues(e.Algorithm, e.Mode, result).Inc()
		},
	}
}
