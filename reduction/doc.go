// Package reduction implements the preprocessing facade of spec.md
// §4.1/§4.8: a pure reduce(I) -> I' and its inverse expand(sigma') ->
// sigma, kept behind the Reducer/Expander interfaces so the concrete
// elimination rule is swappable without touching problem, greedy, rwls
// or memetic, none of which inspect a Reduction's internals.
package reduction
