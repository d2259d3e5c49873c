// Package crossover implements the solution-level crossover operators
// of the memetic driver: pure binary operators over two parent
// solutions of the same Instance, producing a child solution.
//
// Operators are resolved by name through a Registry rather than
// exposed as a closed Go type switch, so the memetic driver stays
// monomorphic over a single Operator interface regardless of which
// variant is configured.
package crossover
