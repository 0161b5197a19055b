// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures (explicit rows, seeded random fill).
//   • Provide an independent reference product computed on plain [][]int.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/strassen/matrix"
)

// MustDense ALLOCATES an n×n owning *Dense or fails the test.
func MustDense(tb testing.TB, n int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(n)
	if err != nil {
		tb.Fatalf("NewDense(%d): %v", n, err)
	}

	return m
}

// MustFromRows BUILDS a *Dense from explicit rows or fails the test.
func MustFromRows(tb testing.TB, rows [][]int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		tb.Fatalf("NewDenseFromRows: %v", err)
	}

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(tb testing.TB, m *matrix.Dense, i, j int) int {
	tb.Helper()
	v, err := m.At(i, j)
	if err != nil {
		tb.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// RandFilledDense RETURNS an n×n owner filled with deterministic values in [-9, 9].
// Small magnitudes keep every product well inside int range.
func RandFilledDense(tb testing.TB, n int, seed int64) *matrix.Dense {
	tb.Helper()
	m := MustDense(tb, n)
	rng := rand.New(rand.NewSource(seed))
	if err := m.Apply(func(_, _, _ int) int { return rng.Intn(19) - 9 }); err != nil {
		tb.Fatalf("Apply: %v", err)
	}

	return m
}

// referenceProduct multiplies plain row slices; it shares no code with the package.
func referenceProduct(a, b [][]int) [][]int {
	n := len(a)
	out := make([][]int, n)
	for i := 0; i < n; i++ {
		out[i] = make([]int, n)
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				out[i][j] += a[i][k] * b[k][j]
			}
		}
	}

	return out
}
