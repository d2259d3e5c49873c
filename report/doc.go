// Package report defines the JSON serialization boundary for solver
// output: a Solution's selected-subset indices, and the greedy/RWLS/
// memetic run reports and memetic configuration built on top of it.
// Every type here round-trips through encoding/json: Load(Marshal(x))
// reproduces x's observable fields.
package report
