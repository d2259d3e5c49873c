// Package problem defines the Unicost Set Cover Problem's data model:
// Instance (ground set + subset family, optionally derived from a parent
// instance via a Reduction), and Solution (a selected-subset bitset over
// one Instance, with its covered-point bitset kept as a cache).
//
// An Instance is immutable once constructed. A Solution borrows its
// Instance by pointer — the "weak reference" of the design notes — and
// must never outlive it; nothing in this package enforces that at
// runtime, exactly as a plain pointer would not in the teacher's own
// core.Graph.
package problem
