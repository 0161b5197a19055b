// SPDX-License-Identifier: MIT
// Package matrix: block decomposition into quadrants and recombination.
//
// Purpose:
//   - Decompose splits an even n×n matrix into NW, NE, SW, SE blocks of n/2,
//     either by copying (Copy) or by aliasing the parent buffer (Alias).
//   - Combine builds a fresh owning 2h×2h matrix from four h×h blocks.
//
// Notes:
//   - Alias quadrants are valid only while the parent is alive; they share
//     storage, so writes to a quadrant are visible in the parent.
//   - Combine never aliases: its destination did not exist before the call.

package matrix

import "fmt"

// Decompose splits m into its four quadrants.
// MAIN DESCRIPTION:
//   - Copy: four new Owning matrices, cells copied row by row.
//   - Alias: four Aliasing views built with NewAlias (zero data movement).
//
// Errors:
//   - ErrNilMatrix, ErrReleased, ErrUnsized (m);
//   - ErrOddSize (matches ErrDimensionMismatch) for odd sizes;
//   - ErrUnknownBlockMode; ErrAllocation in Copy mode.
//
// Complexity:
//   - Copy: Time O(n²), Space O(n²). Alias: Time O(n), Space O(n) row tables.
func Decompose(m *Dense, mode BlockMode) (QuadrantSet, error) {
	var q QuadrantSet
	if err := ValidateLive(m); err != nil {
		return q, matrixErrorf(opDecompose, err)
	}
	if err := ValidateEven(m); err != nil {
		return q, matrixErrorf(opDecompose, err)
	}
	if !mode.Valid() {
		return q, matrixErrorf(opDecompose, fmt.Errorf("%d: %w", mode, ErrUnknownBlockMode))
	}

	h := m.size / 2
	origins := [quadrants][2]int{
		NW: {0, 0},
		NE: {0, h},
		SW: {h, 0},
		SE: {h, h},
	}

	var err error
	for idx, o := range origins {
		switch mode {
		case Alias:
			q[idx], err = NewAlias(m, o[0], o[1], h)
		case Copy:
			q[idx], err = copyBlock(m, o[0], o[1], h)
		}
		if err != nil {
			q.Destroy()

			return QuadrantSet{}, matrixErrorf(opDecompose, err)
		}
	}

	return q, nil
}

// copyBlock materializes the h×h window of m at (r0, c0) into a new owner.
func copyBlock(m *Dense, r0, c0, h int) (*Dense, error) {
	blk, err := NewDense(h)
	if err != nil {
		return nil, err
	}
	for i := 0; i < h; i++ {
		copy(blk.rows[i], m.rows[r0+i][c0:c0+h])
	}

	return blk, nil
}

// Combine assembles four equal-size quadrants into a new owning matrix.
// MAIN DESCRIPTION:
//   - Result size is 2h; quadrant NW lands at (0,0), NE at (0,h), SW at (h,0),
//     SE at (h,h). The quadrants are left untouched.
//
// Errors:
//   - ErrNilMatrix / ErrReleased / ErrUnsized for any quadrant;
//   - ErrDimensionMismatch when quadrant sizes differ; ErrAllocation.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Combine(q QuadrantSet) (*Dense, error) {
	for _, blk := range q {
		if err := ValidateLive(blk); err != nil {
			return nil, matrixErrorf(opCombine, err)
		}
		if err := ValidateSameSize(q[NW], blk); err != nil {
			return nil, matrixErrorf(opCombine, err)
		}
	}

	h := q[NW].size
	out, err := NewDense(2 * h)
	if err != nil {
		return nil, matrixErrorf(opCombine, err)
	}

	var i int
	var top, bottom []int
	for i = 0; i < h; i++ {
		top, bottom = out.rows[i], out.rows[i+h]
		copy(top[:h], q[NW].rows[i])
		copy(top[h:], q[NE].rows[i])
		copy(bottom[:h], q[SW].rows[i])
		copy(bottom[h:], q[SE].rows[i])
	}

	return out, nil
}
