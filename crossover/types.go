package crossover

import (
	"context"
	"math/rand"

	"github.com/ToluPeazy/uscp/problem"
	"github.com/ToluPeazy/uscp/rwls"
)

// Operator is a pure binary operator on solutions over the same
// Instance. rng is always accepted, even by deterministic operators,
// so the memetic driver can dispatch through one interface.
type Operator interface {
	Name() string
	Apply(ctx context.Context, a, b *problem.Solution, rng *rand.Rand) (*problem.Solution, error)
}

// Registry resolves crossover operator names to Operator instances, all
// closing over the same Instance (and, for the RWLS-finished variants,
// the same rwls.Engine).
type Registry struct {
	instance   *problem.Instance
	engine     *rwls.Engine
	rwlsBudget rwls.Budget
}

// Option configures a Registry at construction time.
type Option func(*Registry)

// WithEngine wires a prebuilt rwls.Engine, required by the
// "subproblem_rwls" and "extended_subproblem_rwls" operators.
func WithEngine(e *rwls.Engine) Option {
	return func(r *Registry) { r.engine = e }
}

// WithRWLSBudget overrides the default finishing budget the RWLS-backed
// operators use to shrink a freshly filled child.
func WithRWLSBudget(b rwls.Budget) Option {
	return func(r *Registry) { r.rwlsBudget = b }
}

// defaultRWLSBudget bounds the RWLS finishing pass a crossover operator
// runs on a freshly filled child; the memetic driver's own cumulative
// budget governs the population-level search.
var defaultRWLSBudget = rwls.Budget{MaxSteps: 500}

// NewRegistry builds a Registry over inst.
func NewRegistry(inst *problem.Instance, opts ...Option) *Registry {
	r := &Registry{instance: inst, rwlsBudget: defaultRWLSBudget}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Names lists every operator name this Registry can resolve.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	return names
}
