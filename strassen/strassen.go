// SPDX-License-Identifier: MIT
// Package strassen: the seven-product engine.
//
// Purpose:
//   - Multiply is the public entry: validation, base case, one top-level
//     decomposition scheduled per Policy.Concurrency.
//   - multiplyLevel performs exactly one level: split, seven products,
//     combination. Recursion happens through subMultiply.
//   - combine folds the products into quadrants using the signed
//     combination table from products.go.
//
// Notes:
//   - Every level owns what it creates: quadrant sets, scratch pairs and
//     products are destroyed before the level returns, on success or error.
//   - Only the top level may fork; recursive levels pass Sequential.
//   - Operands are read only. In Alias mode quadrants borrow the operands'
//     buffers but no kernel ever writes through them.

package strassen

import (
	"github.com/katalvlaran/strassen/matrix"
)

// Multiply returns A×B computed with Strassen's seven-product scheme under
// policy p. The result is a fresh owning matrix; a and b are not modified.
//
// Steps:
//  1. Validate p and the operands (live, same size).
//  2. Sizes 0 and 1 go straight to the cubic kernel.
//  3. Other sizes must be powers of two (ErrNotPowerOfTwo).
//  4. One decomposition level; sub-products recurse per p.Depth.
//
// Errors: ErrInvalidPolicy, ErrNotPowerOfTwo, and the matrix sentinels
// (ErrNilMatrix, ErrDimensionMismatch, ErrReleased, ErrAllocation, ...).
//
// Complexity: O(n^log2(7)) under FullRecursion with a small threshold,
// O(n^3) with a 7/8 constant under SingleLevel.
func Multiply(a, b *matrix.Dense, p Policy) (*matrix.Dense, error) {
	if err := p.Validate(); err != nil {
		return nil, strassenErrorf(opMultiply, err)
	}
	if err := matrix.ValidateBinary(a, b); err != nil {
		return nil, strassenErrorf(opMultiply, err)
	}

	n := a.Size()
	log := p.logger()
	if n < 2 {
		log.Debug("strassen: base case", "size", n)
		c, err := matrix.Product(a, b, p.LoopOrder)
		if err != nil {
			return nil, strassenErrorf(opMultiply, err)
		}

		return c, nil
	}
	if n&(n-1) != 0 {
		return nil, strassenErrorf(opMultiply, ErrNotPowerOfTwo)
	}

	log.Debug("strassen: multiply", "size", n, "policy", p)
	c, err := multiplyLevel(a, b, p, p.Concurrency)
	if err != nil {
		log.Debug("strassen: multiply failed", "size", n, "err", err)

		return nil, strassenErrorf(opMultiply, err)
	}

	return c, nil
}

// multiplyLevel performs one decomposition level.
// MAIN DESCRIPTION:
//   - Split a and b into quadrants with p.Blocks, compute M0..M6 with the
//     given scheduling, and combine them into a fresh owning result.
//
// Implementation:
//   - Stage 1: Decompose a and b (Copy or Alias); both sets are deferred
//     for destruction.
//   - Stage 2: runForkJoin or runSequential fills the product slots.
//   - Stage 3: combine builds the result; products are destroyed on return.
//
// Inputs:
//   - a, b: live, equal, even size (callers guarantee a power of two).
//   - mode: ForkJoin only at the top level; Sequential below it.
//
// Errors:
//   - matrix sentinels from Decompose, the kernels and Combine, wrapped with
//     the failing product label (M0..M6) or the combine tag.
//
// Complexity:
//   - Time T(n) = 7·T(n/2) + O(n²) under FullRecursion, 7·(n/2)³ + O(n²)
//     under SingleLevel. Space O(n²) per live level.
func multiplyLevel(a, b *matrix.Dense, p Policy, mode Concurrency) (*matrix.Dense, error) {
	qa, err := matrix.Decompose(a, p.Blocks)
	if err != nil {
		return nil, err
	}
	defer qa.Destroy()

	qb, err := matrix.Decompose(b, p.Blocks)
	if err != nil {
		return nil, err
	}
	defer qb.Destroy()

	var m products
	defer m.destroy()

	if mode == ForkJoin {
		err = runForkJoin(qa, qb, p, &m)
	} else {
		err = runSequential(qa, qb, p, &m)
	}
	if err != nil {
		return nil, err
	}

	return combine(&m)
}

// subMultiply multiplies one pair of product operands.
// FullRecursion above the threshold goes one level deeper, always
// sequentially; everything else uses the cubic kernel.
func subMultiply(x, y *matrix.Dense, p Policy) (*matrix.Dense, error) {
	if p.Depth == FullRecursion && x.Size() > p.Threshold {
		return multiplyLevel(x, y, p, Sequential)
	}

	return matrix.Product(x, y, p.LoopOrder)
}

// combine folds the seven products into the four result quadrants and
// assembles them into a fresh owning matrix.
func combine(m *products) (*matrix.Dense, error) {
	var c matrix.QuadrantSet
	defer c.Destroy()

	for quad, terms := range combination {
		dst := new(matrix.Dense)
		c[quad] = dst

		first, second := terms[0], terms[1]
		if err := apply(m[first.product], m[second.product], dst, second.sign); err != nil {
			return nil, strassenErrorf(opCombine, err)
		}
		for _, t := range terms[2:] {
			if err := apply(dst, m[t.product], dst, t.sign); err != nil {
				return nil, strassenErrorf(opCombine, err)
			}
		}
	}

	out, err := matrix.Combine(c)
	if err != nil {
		return nil, strassenErrorf(opCombine, err)
	}

	return out, nil
}

// apply computes dst = x ± y.
func apply(x, y, dst *matrix.Dense, s sign) error {
	if s == minus {
		return matrix.Sub(x, y, dst)
	}

	return matrix.Add(x, y, dst)
}
