// Package metrics exposes a small Prometheus registry that a caller can
// serve over HTTP through Recorder.Handler while a long-running RWLS or
// memetic solve is in progress: a steps counter, a best-solution-size
// gauge, and per-phase duration histograms. cmd/uscp-solve records into
// a Recorder but does not serve it over HTTP. Algorithms accept a *Recorder (nil-safe) rather than
// importing this package's global state directly, so library users who
// never wire a CLI never pay for Prometheus.
package metrics
