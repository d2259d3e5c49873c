package wcrossover

import "math/rand"

// Operator combines two parent weight vectors into a child vector.
// Apply1 and Apply2 differ for operators whose two entry points are
// asymmetric in which parent they favor (keep, minmax, shuffle); symmetric
// operators implement both identically.
type Operator interface {
	Name() string
	Apply1(a, b []int64, rng *rand.Rand) []int64
	Apply2(a, b []int64, rng *rand.Rand) []int64
}

// Registry resolves weight-crossover operator names to Operator
// instances. Unlike crossover.Registry, no operator here needs to
// capture an Instance or Engine: every operator is a pure vector
// function, so a single Registry value is stateless and reusable.
type Registry struct{}

// NewRegistry builds a Registry. It carries no state; the constructor
// exists so callers configure weight-crossover the same way they
// configure crossover.
func NewRegistry() *Registry { return &Registry{} }

// Names lists every operator name this Registry can resolve.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	return names
}
