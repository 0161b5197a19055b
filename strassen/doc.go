// SPDX-License-Identifier: MIT

// Package strassen multiplies square integer matrices with Strassen's
// seven-product scheme on top of package matrix.
//
// What:
//
//   - Multiply(a, b, policy) splits both operands into quadrants, computes
//     the seven products M0..M6 and combines them:
//     C_NW = M0+M3-M4+M6, C_NE = M2+M4, C_SW = M1+M3, C_SE = M0-M1+M2+M5.
//   - Policy selects the base-case loop order, copying or aliasing
//     quadrants, one level or recursion down to a threshold, and sequential
//     or fork-join scheduling of the seven top-level products.
//   - Strategy and Preset give the numbered configurations used by the
//     command line tool, including the two naive kernels.
//
// Sizes must be powers of two; 0 and 1 fall through to the cubic kernel.
// Results are always fresh owning matrices; every quadrant, temporary and
// partial product is released before Multiply returns.
//
// Fork-join runs exactly seven goroutines at the top level only, each with
// private scratch. Nested levels run sequentially inside their task.
//
// Example:
//
//	p := strassen.NewPolicy(strassen.WithFullRecursion(16), strassen.WithForkJoin())
//	c, err := strassen.Multiply(a, b, p)
package strassen
