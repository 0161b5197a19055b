// SPDX-License-Identifier: MIT

package matrixio

import "errors"

var (
	// ErrMalformedInput indicates a missing or non-integer token, a negative
	// size, or input that ends inside a matrix.
	ErrMalformedInput = errors.New("matrixio: malformed input")

	// ErrNonSquare indicates a header whose row and column counts differ.
	ErrNonSquare = errors.New("matrixio: matrix is not square")
)
