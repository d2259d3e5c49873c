package rwls

import (
	"time"

	"github.com/ToluPeazy/uscp/bitset"
	"github.com/ToluPeazy/uscp/internal/metrics"
	"github.com/ToluPeazy/uscp/problem"
)

// TabuListLength is the FIFO tabu length used by the swap step, chosen
// small enough that membership is checked by linear scan in O(1)
// amortized time.
const TabuListLength = 15

// Budget bounds an Improve call by step count, wall time, or both.
// Improve rejects a Budget that sets neither bound, and also stops when
// ctx is cancelled.
type Budget struct {
	MaxSteps    int
	MaxDuration time.Duration
}

// Exceeded reports whether the budget has been consumed.
func (b Budget) Exceeded(step int, elapsed time.Duration) bool {
	if b.MaxSteps > 0 && step >= b.MaxSteps {
		return true
	}
	if b.MaxDuration > 0 && elapsed >= b.MaxDuration {
		return true
	}
	return false
}

// Position records when the best-so-far solution was found.
type Position struct {
	Step int
	Time time.Duration
}

// Report wraps the outcome of one Improve call.
type Report struct {
	SolutionInitial *problem.Solution
	SolutionFinal   *problem.Solution
	Steps           int
	Time            time.Duration
	FoundAt         Position
}

// subsetInfo is the per-subset incremental bookkeeping described by the
// score invariants: score, the timestamp of its last add/remove, and a
// coarse can-add-to-solution freshness hint.
type subsetInfo struct {
	score            int64
	timestamp        int
	canAddToSolution bool
}

// Engine amortizes neighbor-graph and covering-points preprocessing for
// an Instance across many Improve calls. It is safe for reuse but not
// for concurrent Improve calls against the same Engine.
type Engine struct {
	problem               *problem.Instance
	neighbors             neighborStore
	subsetsCoveringPoints []*bitset.Bitset

	unbiasedSampling bool
	debugAssertions  bool
	denseNeighbors   bool
	metrics          *metrics.Recorder
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithUnbiasedSampling switches uncovered-point selection from the
// source's slightly first-bit-biased draw to a uniform draw. The default
// draw picks the first uncovered point with probability 2/(count+1) and
// every other uncovered point with probability 1/(count+1).
func WithUnbiasedSampling() Option {
	return func(e *Engine) { e.unbiasedSampling = true }
}

// WithDebugAssertions enables periodic full score recomputation,
// aborting with an internal-invariant error on mismatch. It multiplies
// the cost of each step and is intended for development, not production
// runs.
func WithDebugAssertions() Option {
	return func(e *Engine) { e.debugAssertions = true }
}

// WithDenseNeighbors selects the bitset-backed neighbor representation
// instead of the default adjacency-list one. Faster iteration on
// instances with heavy pairwise subset overlap, at O(n^2) bits of
// memory.
func WithDenseNeighbors() Option {
	return func(e *Engine) { e.denseNeighbors = true }
}

// WithMetrics attaches a Recorder that observes step counts and phase
// durations. A nil Recorder (the default) disables metrics.
func WithMetrics(m *metrics.Recorder) Option {
	return func(e *Engine) { e.metrics = m }
}
