// SPDX-License-Identifier: MIT

package strassen

import "github.com/katalvlaran/strassen/matrix"

// Test bridge (white-box) for the product schedulers.

// ForkJoinProducts runs the fork-join scheduler and returns the product slots.
func ForkJoinProducts(qa, qb matrix.QuadrantSet, p Policy) ([productCount]*matrix.Dense, error) {
	var m products
	err := runForkJoin(qa, qb, p, &m)

	return m, err
}

// SequentialProducts runs the sequential scheduler and returns the product slots.
func SequentialProducts(qa, qb matrix.QuadrantSet, p Policy) ([productCount]*matrix.Dense, error) {
	var m products
	err := runSequential(qa, qb, p, &m)

	return m, err
}

// ProductCount is the number of products per level.
const ProductCount = productCount
