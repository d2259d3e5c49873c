package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder records solver progress into a Prometheus registry. The zero
// value is not usable; construct one with NewRecorder. A nil *Recorder
// is safe to call methods on: every method is a no-op when the receiver
// is nil, so algorithms can accept a possibly-nil *Recorder unconditionally.
type Recorder struct {
	registry *prometheus.Registry

	steps         prometheus.Counter
	bestSize      prometheus.Gauge
	phaseDuration *prometheus.HistogramVec
}

// NewRecorder builds a Recorder with its own private registry, so
// multiple concurrent solver runs (each with its own Recorder) never
// collide on metric names.
func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()
	r := &Recorder{
		registry: registry,
		steps: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Namespace: "uscp",
			Name:      "steps_total",
			Help:      "Total RWLS/memetic steps executed.",
		}),
		bestSize: promauto.With(registry).NewGauge(prometheus.GaugeOpts{
			Namespace: "uscp",
			Name:      "best_solution_subsets",
			Help:      "Number of subsets in the best solution found so far.",
		}),
		phaseDuration: promauto.With(registry).NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "uscp",
			Name:      "phase_duration_seconds",
			Help:      "Wall-clock duration of a solver phase.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"phase"}),
	}
	return r
}

// IncStep records one RWLS/memetic step.
func (r *Recorder) IncStep() {
	if r == nil {
		return
	}
	r.steps.Inc()
}

// ObserveBestSize records a new best-solution size.
func (r *Recorder) ObserveBestSize(size int) {
	if r == nil {
		return
	}
	r.bestSize.Set(float64(size))
}

// ObservePhaseDuration records how long a named phase ("greedy", "rwls",
// "memetic") took, in seconds.
func (r *Recorder) ObservePhaseDuration(phase string, seconds float64) {
	if r == nil {
		return
	}
	r.phaseDuration.WithLabelValues(phase).Observe(seconds)
}

// Handler returns an http.Handler serving this Recorder's registry in
// the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
