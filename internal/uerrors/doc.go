// Package uerrors classifies solver errors into the three kinds spec.md
// §7 defines: invalid input, an instance with no solution, and an
// internal bookkeeping invariant violation. Algorithmic APIs never
// panic on classifiable failures; they return an error wrapped with one
// of these kinds, which callers inspect with As.
package uerrors
