// SPDX-License-Identifier: MIT
// Package matrix: elementwise kernels (Add/Sub) and their allocating facades.
//
// Purpose:
//   - C = A ± B for equal-size square operands, any ownership mix.
//   - Destinations are output parameters sized lazily via TryCreate, so a
//     zero-value Dense or a pre-sized scratch matrix can be reused.
//
// Determinism:
//   - Fixed i→j loop order over the row tables; each cell of C is written once
//     after both inputs at that cell are read, so C may be A or B (in-place).

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opDecompose = "Decompose"
	opCombine   = "Combine"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes c = a + sign*b for sign ∈ {+1, -1}.
// MAIN DESCRIPTION:
//   - Shared validation, lazy destination sizing and row-wise loop for Add/Sub.
//
// Implementation:
//   - Stage 1: ValidateBinary(a, b); c.TryCreate(a.size).
//   - Stage 2: walk rows of a, b and c together; cells are contiguous within a
//     row even for aliases, so strides never enter the inner loop.
//
// Errors:
//   - ErrNilMatrix, ErrReleased, ErrUnsized, ErrDimensionMismatch, ErrAllocation.
//
// Complexity:
//   - Time O(n²), Space O(n²) only when c had to be allocated.
func addSub(a, b, c *Dense, sign int, opTag string) error {
	if err := ValidateBinary(a, b); err != nil {
		return matrixErrorf(opTag, err)
	}
	if err := c.TryCreate(a.size); err != nil {
		return matrixErrorf(opTag, err)
	}
	if err := c.live(); err != nil { // owner of an aliased destination may be gone
		return matrixErrorf(opTag, err)
	}

	var i, j int
	var ra, rb, rc []int
	for i = 0; i < a.size; i++ {
		ra, rb, rc = a.rows[i], b.rows[i], c.rows[i]
		if sign > 0 {
			for j = range rc {
				rc[j] = ra[j] + rb[j]
			}
		} else {
			for j = range rc {
				rc[j] = ra[j] - rb[j]
			}
		}
	}

	return nil
}

// Add computes c = a + b cell by cell.
// c is sized via TryCreate when unsized; it may be a or b.
//
// Errors: ErrDimensionMismatch when sizes differ (or c is sized differently),
// plus the liveness sentinels.
// Complexity: O(n²).
func Add(a, b, c *Dense) error { return addSub(a, b, c, +1, opAdd) }

// Sub computes c = a - b cell by cell.
// c is sized via TryCreate when unsized; it may be a or b.
func Sub(a, b, c *Dense) error { return addSub(a, b, c, -1, opSub) }

// Sum returns a fresh owning a + b.
func Sum(a, b *Dense) (*Dense, error) {
	c := new(Dense)
	if err := Add(a, b, c); err != nil {
		return nil, err
	}

	return c, nil
}

// Diff returns a fresh owning a - b.
func Diff(a, b *Dense) (*Dense, error) {
	c := new(Dense)
	if err := Sub(a, b, c); err != nil {
		return nil, err
	}

	return c, nil
}
