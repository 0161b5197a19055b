// SPDX-License-Identifier: MIT
// Package matrix: cubic multiplication kernel with a selectable loop order.

package matrix

import "fmt"

// Mul performs C = A × B with the O(n³) triple loop in the given order.
// MAIN DESCRIPTION:
//   - Both orders produce the same integers; only the memory walk differs.
//
// Implementation:
//   - Stage 1: validate operands (live, equal size), order, destination
//     (not an operand), then size C via TryCreate and zero it.
//   - Stage 2 (RowMajorAccumulate, i→k→j): for each row i of A and each k,
//     add A[i][k]·B[k][·] into C[i][·]; zero A[i][k] are skipped.
//   - Stage 2 (NaiveIJK, i→j→k): dot product of row i of A with column j of B.
//
// Inputs:
//   - a, b: operands of equal size (owning or aliasing).
//   - c   : destination; unsized, or sized to a.Size().
//   - order: RowMajorAccumulate or NaiveIJK.
//
// Errors:
//   - ErrNilMatrix, ErrReleased, ErrUnsized, ErrDimensionMismatch,
//     ErrOverlap (c is a or b), ErrUnknownLoopOrder, ErrAllocation.
//
// Complexity:
//   - Time O(n³), Space O(n²) only when c had to be allocated.
//
// Notes:
//   - An aliasing destination must not overlap the operands' windows; only
//     pointer identity is checked.
func Mul(a, b, c *Dense, order LoopOrder) error {
	if err := ValidateBinary(a, b); err != nil {
		return matrixErrorf(opMul, err)
	}
	if !order.Valid() {
		return matrixErrorf(opMul, fmt.Errorf("%d: %w", order, ErrUnknownLoopOrder))
	}
	if err := validateProductDestination(a, b, c); err != nil {
		return matrixErrorf(opMul, err)
	}
	if err := c.TryCreate(a.size); err != nil {
		return matrixErrorf(opMul, err)
	}
	if err := c.live(); err != nil {
		return matrixErrorf(opMul, err)
	}
	c.zero()

	switch order {
	case RowMajorAccumulate:
		mulIKJ(a, b, c)
	case NaiveIJK:
		mulIJK(a, b, c)
	}

	return nil
}

// Product returns a fresh owning A × B.
func Product(a, b *Dense, order LoopOrder) (*Dense, error) {
	c := new(Dense)
	if err := Mul(a, b, c, order); err != nil {
		return nil, err
	}

	return c, nil
}

// mulIKJ accumulates row k of B into row i of C scaled by A[i][k].
// Both inner-loop rows are walked sequentially.
func mulIKJ(a, b, c *Dense) {
	n := a.size
	var i, j, k, av int
	var ra, rb, rc []int
	for i = 0; i < n; i++ {
		ra, rc = a.rows[i], c.rows[i]
		for k = 0; k < n; k++ {
			av = ra[k]
			if av == 0 {
				continue
			}
			rb = b.rows[k]
			for j = range rc {
				rc[j] += av * rb[j]
			}
		}
	}
}

// mulIJK computes each C[i][j] as a dot product, reading B column-wise.
func mulIJK(a, b, c *Dense) {
	n := a.size
	var i, j, k, sum int
	var ra, rc []int
	for i = 0; i < n; i++ {
		ra, rc = a.rows[i], c.rows[i]
		for j = 0; j < n; j++ {
			sum = 0
			for k = 0; k < n; k++ {
				sum += ra[k] * b.rows[k][j]
			}
			rc[j] = sum
		}
	}
}
