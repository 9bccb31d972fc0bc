package runner

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/cropsolve/cropsolve/solve"
	"github.com/cropsolve/cropsolve/solver"
)

// metrics holds the pool's Prometheus instruments. A nil *metrics is a
// valid no-op receiver, so unmetered pools skip the bookkeeping entirely.
type metrics struct {
	duration prometheus.Histogram
	solves   *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "cropsolve_solve_duration_seconds",
			Help:    "Wall-clock duration of solve runs, queue wait excluded.",
			Buckets: prometheus.DefBuckets,
		}),
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cropsolve_solves_total",
			Help: "Finished solve runs by terminal status.",
		}, []string{"status"}),
	}
	reg.MustRegister(m.duration, m.solves)

	return m
}

// observe records one finished run. Negative seconds mean the run never
// started (canceled while still queued) and skip the duration histogram.
func (m *metrics) observe(seconds float64, status string) {
	if m == nil {
		return
	}
	if seconds >= 0 {
		m.duration.Observe(seconds)
	}
	m.solves.WithLabelValues(status).Inc()
}

// outcomeLabel folds a run outcome into the status label of the solve
// counter.
func outcomeLabel(sol *solve.Solution, err error) string {
	switch {
	case err == nil:
		return sol.Status.String()
	case errors.Is(err, solve.ErrCanceled):
		return "canceled"
	case errors.Is(err, solver.ErrInfeasible):
		return solver.StatusInfeasible.String()
	case errors.Is(err, solver.ErrUnbounded):
		return solver.StatusUnbounded.String()
	case errors.Is(err, solve.ErrInvalidProblem):
		return "invalid"
	default:
		return "error"
	}
}
