// SPDX-License-Identifier: MIT

package strassen_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/strassen/matrix"
	"github.com/katalvlaran/strassen/strassen"
)

// mustFromRows BUILDS a *Dense from explicit rows or fails the test.
func mustFromRows(tb testing.TB, rows [][]int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		tb.Fatalf("NewDenseFromRows: %v", err)
	}

	return m
}

// randDense RETURNS an n×n owner with deterministic values in [-9, 9].
func randDense(tb testing.TB, n int, seed int64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(n)
	if err != nil {
		tb.Fatalf("NewDense(%d): %v", n, err)
	}
	rng := rand.New(rand.NewSource(seed))
	if err = m.Apply(func(_, _, _ int) int { return rng.Intn(19) - 9 }); err != nil {
		tb.Fatalf("Apply: %v", err)
	}

	return m
}

// naive returns the reference product or fails the test.
func naive(tb testing.TB, a, b *matrix.Dense) *matrix.Dense {
	tb.Helper()
	c, err := matrix.Product(a, b, matrix.NaiveIJK)
	if err != nil {
		tb.Fatalf("Product: %v", err)
	}

	return c
}

// policies covers every combination of depth, blocks, concurrency and order.
func policies() map[string]strassen.Policy {
	out := make(map[string]strassen.Policy)
	for _, order := range []matrix.LoopOrder{matrix.RowMajorAccumulate, matrix.NaiveIJK} {
		for _, blocks := range []matrix.BlockMode{matrix.Copy, matrix.Alias} {
			for _, depth := range []strassen.Option{strassen.WithSingleLevel(), strassen.WithFullRecursion(1), strassen.WithFullRecursion(4)} {
				for _, conc := range []strassen.Option{strassen.WithSequential(), strassen.WithForkJoin()} {
					p := strassen.NewPolicy(strassen.WithLoopOrder(order), strassen.WithBlockMode(blocks), depth, conc)
					name := fmt.Sprintf("%s/%s/%s/%s/t=%d", p.LoopOrder, p.Blocks, p.Depth, p.Concurrency, p.Threshold)
					out[name] = p
				}
			}
		}
	}

	return out
}
