// Package xlog provides the process-wide structured logger used by every
// uscp package. Per spec.md §5 and §9, the only global state in this
// module is this logger: it must be initialized once before any solver
// call (Init, or the zero-config default from an implicit first Get),
// and it has no other lifecycle concerns. The underlying sink is
// go.uber.org/zap, which is safe for concurrent use, satisfying the
// "thread-safe at the sink" requirement.
package xlog
