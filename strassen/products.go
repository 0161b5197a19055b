// SPDX-License-Identifier: MIT
// Package strassen: product and combination tables, per-task scratch.
//
// Purpose:
//   - Describe M0..M6 declaratively as (left operand, right operand) pairs
//     over quadrant indices, and the four result quadrants as signed sums
//     of products. The engine walks these tables instead of spelling out
//     fourteen operand sums and eight combination steps by hand.
//   - Hold the two operand temporaries one product computation needs.
//
// Notes:
//   - Scratch matrices are sized lazily by the first Add/Sub into them and
//     reused for every later product that shares the scratch.
//   - A scratch pair is never shared between goroutines.

package strassen

import "github.com/katalvlaran/strassen/matrix"

// sign of an operand or combination term.
type sign int

const (
	none sign = iota
	plus
	minus
)

// operand is one factor of a sub-product: a single quadrant, or the sum or
// difference of two quadrants.
type operand struct {
	x, y int
	op   sign
}

func single(x int) operand  { return operand{x: x, op: none} }
func sum(x, y int) operand  { return operand{x: x, y: y, op: plus} }
func diff(x, y int) operand { return operand{x: x, y: y, op: minus} }

// productDef describes M_k = left(A) * right(B).
type productDef struct {
	label       string
	left, right operand
}

// productDefs lists the seven Strassen products in the order they are
// computed and indexed by the combination table.
var productDefs = [productCount]productDef{
	{"M0", sum(matrix.NW, matrix.SE), sum(matrix.NW, matrix.SE)},
	{"M1", sum(matrix.SW, matrix.SE), single(matrix.NW)},
	{"M2", single(matrix.NW), diff(matrix.NE, matrix.SE)},
	{"M3", single(matrix.SE), diff(matrix.SW, matrix.NW)},
	{"M4", sum(matrix.NW, matrix.NE), single(matrix.SE)},
	{"M5", diff(matrix.SW, matrix.NW), sum(matrix.NW, matrix.NE)},
	{"M6", diff(matrix.NE, matrix.SE), sum(matrix.SW, matrix.SE)},
}

// term is one signed product in a result quadrant.
type term struct {
	product int
	sign    sign
}

// combination gives each result quadrant as a signed sum of products.
// The first term of every row is positive.
var combination = [4][]term{
	matrix.NW: {{0, plus}, {3, plus}, {4, minus}, {6, plus}},
	matrix.NE: {{2, plus}, {4, plus}},
	matrix.SW: {{1, plus}, {3, plus}},
	matrix.SE: {{0, plus}, {1, minus}, {2, plus}, {5, plus}},
}

// products holds the seven sub-product results of one level.
type products [productCount]*matrix.Dense

// destroy releases every computed product. Nil slots are skipped.
func (m *products) destroy() {
	for i, p := range m {
		if p != nil {
			p.Destroy()
			m[i] = nil
		}
	}
}

// scratch holds the two operand temporaries of a product computation.
// Each is sized lazily on first use and reused afterwards.
type scratch struct {
	left, right *matrix.Dense
}

func newScratch() *scratch {
	return &scratch{left: new(matrix.Dense), right: new(matrix.Dense)}
}

func (s *scratch) destroy() {
	s.left.Destroy()
	s.right.Destroy()
}

// resolve returns the operand matrix: the quadrant itself for single
// operands, otherwise tmp filled with the quadrant sum or difference.
func resolve(q matrix.QuadrantSet, o operand, tmp *matrix.Dense) (*matrix.Dense, error) {
	var err error
	switch o.op {
	case plus:
		err = matrix.Add(q[o.x], q[o.y], tmp)
	case minus:
		err = matrix.Sub(q[o.x], q[o.y], tmp)
	default:
		return q[o.x], nil
	}
	if err != nil {
		return nil, err
	}

	return tmp, nil
}

// computeProduct evaluates product idx over the quadrants qa and qb.
// MAIN DESCRIPTION:
//   - M_idx = left(qa) × right(qb), where each side is a single quadrant or
//     the sum/difference of two, per productDefs.
//
// Implementation:
//   - Stage 1: resolve the left operand into s.left (or use the quadrant).
//   - Stage 2: resolve the right operand into s.right.
//   - Stage 3: subMultiply, which recurses or runs the cubic kernel.
//
// Errors:
//   - Any matrix sentinel, wrapped with the product label ("M3: ...").
//
// Complexity:
//   - O(h²) for the operand sums plus the cost of one h×h product.
//
// Notes:
//   - The result is a fresh owning matrix; s only holds temporaries and may
//     be reused by the caller right after the call.
func computeProduct(idx int, qa, qb matrix.QuadrantSet, p Policy, s *scratch) (*matrix.Dense, error) {
	def := productDefs[idx]
	x, err := resolve(qa, def.left, s.left)
	if err != nil {
		return nil, strassenErrorf(def.label, err)
	}
	y, err := resolve(qb, def.right, s.right)
	if err != nil {
		return nil, strassenErrorf(def.label, err)
	}
	out, err := subMultiply(x, y, p)
	if err != nil {
		return nil, strassenErrorf(def.label, err)
	}

	return out, nil
}
