// Package uscp is a solver toolkit for the Unicost Set Cover Problem:
// given a ground set of points and a family of candidate subsets, find a
// minimum-cardinality selection of subsets whose union covers every point.
//
// What is USCP?
//
//	A classic NP-hard covering problem with a flat, unordered data model:
//	no graph, no weights, no distances — just points and the subsets that
//	cover them. This module brings together:
//		• Core model: problem.Instance / problem.Solution over bitset.Bitset
//		• Construction heuristics: greedy, restricted, and random-restart greedy
//		• Local search: rwls, a weighted local-search engine with tabu and
//		  configurable step/time budgets
//		• Population search: memetic, combining crossover and weight-crossover
//		  operators with rwls refinement across generations
//		• Preprocessing: reduction, eliminating dominated subsets and
//		  implied points before solving
//		• I/O: format/orlibrary and format/sts readers for two established
//		  benchmark instance formats, and report for JSON solver output
//
// Under the hood, everything is organized under focused subpackages:
//
//	problem/         — Instance, Solution, and the covering invariants they enforce
//	bitset/          — the fixed-width bit-vector primitive the whole solver stack shares
//	greedy/          — deterministic and randomized greedy construction heuristics
//	rwls/            — weighted local search with tabu-list-driven diversification
//	crossover/       — solution-level recombination operators for memetic search
//	wcrossover/      — weight-vector recombination operators feeding rwls restarts
//	memetic/         — the population-based search loop tying the above together
//	reduction/       — instance preprocessing (dominated-subset/implied-point elimination)
//	format/orlibrary/ — OR-Library and OR-Library-rail instance readers/writer
//	format/sts/      — Steiner-triple-system instance reader
//	report/          — JSON encoding for solver reports across all three solve modes
//	internal/config/ — CLI flag parsing and validation shared by the two commands
//	internal/uerrors/ — the error-kind taxonomy (invalid-input / no-solution / internal-invariant)
//	internal/xlog/   — structured logging setup
//	internal/metrics/ — Prometheus counters and histograms for solve runs
//	cmd/uscp-solve/  — the solving CLI
//	cmd/uscp-print/  — the report-rendering CLI
package uscp
