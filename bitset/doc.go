// Package bitset provides Bitset, a fixed-length dense bit array used
// throughout uscp to represent point and subset membership.
//
// A Bitset is created with a length that never changes afterward. All
// operations are total on indices in [0, Len()); indices outside that
// range panic, mirroring how the standard library treats out-of-range
// slice access. Bitset is not safe for concurrent use without external
// synchronization when any goroutine writes to it. rwls's parallel
// preprocessing pass only reads the bitsets its goroutines share and
// writes each destination from a single goroutine, so it takes no lock.
package bitset
