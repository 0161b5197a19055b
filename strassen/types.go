// SPDX-License-Identifier: MIT
// Package strassen defines recursion and concurrency modes.
package strassen

// Depth selects how each of the seven sub-products is computed.
//
//   - SingleLevel: decompose once, then the cubic kernel on every
//     sub-product regardless of its size.
//   - FullRecursion: recurse while the operand size is above
//     Policy.Threshold, cubic kernel at or below it.
type Depth int

const (
	// SingleLevel: one Strassen decomposition, naive multiply below.
	SingleLevel Depth = iota

	// FullRecursion: Strassen down to the threshold block size.
	FullRecursion
)

// String returns the depth name.
func (d Depth) String() string {
	switch d {
	case SingleLevel:
		return "single-level"
	case FullRecursion:
		return "full-recursion"
	default:
		return "unknown"
	}
}

// Concurrency selects how the seven top-level sub-products are scheduled.
//
//   - Sequential: one after another on the calling goroutine, sharing one
//     scratch pool.
//   - ForkJoin: exactly seven goroutines, one per product, each with
//     private scratch; the caller waits for all before combining. Nested
//     recursion inside a task is always sequential.
type Concurrency int

const (
	// Sequential: serialized products on the caller's goroutine.
	Sequential Concurrency = iota

	// ForkJoin: seven concurrent top-level tasks joined before combination.
	ForkJoin
)

// String returns the concurrency name.
func (c Concurrency) String() string {
	switch c {
	case Sequential:
		return "sequential"
	case ForkJoin:
		return "fork-join"
	default:
		return "unknown"
	}
}
