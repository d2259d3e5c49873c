// Package wcrossover implements the weight-crossover operators the
// memetic driver uses to seed RWLS's point weights on a child from its
// two parents' weight vectors.
//
// Every operator is a pure function of two int64 vectors of length m
// plus an *rand.Rand, producing a new vector of length m. Operators
// with asymmetric parent roles expose two entry points, Apply1 and
// Apply2, mirroring the source's apply1/apply2 split (see minmax and
// shuffle).
package wcrossover
