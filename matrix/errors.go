// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All public operations return these sentinels (possibly wrapped with an
// operation tag) and tests match them via errors.Is. No operation panics on
// user-triggered conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Kernels
// wrap with matrixErrorf(opTag, ErrX) at the facade; callers still use
// errors.Is.
//
// ERROR PRIORITY (checked in this order by validators):
// nil -> released -> shape/size -> allocation.

var (
	// ErrInvalidDimensions indicates a negative requested size.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrAllocation is returned when the backing buffer cannot be obtained
	// (size*size overflows int or the runtime refuses the allocation).
	ErrAllocation = errors.New("matrix: allocation failure")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrBadShape is returned when an alias window does not fit its parent.
	ErrBadShape = errors.New("matrix: invalid window")

	// ErrDimensionMismatch indicates operands of different sizes, or a
	// destination already sized for a different size.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals row data that does not form a square matrix.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrUnsized indicates an operand that was never sized via NewDense/TryCreate.
	ErrUnsized = errors.New("matrix: matrix is not sized")

	// ErrReleased indicates use of a destroyed matrix, or of an alias whose
	// owner has been destroyed.
	ErrReleased = errors.New("matrix: matrix released")

	// ErrOverlap indicates that a multiplication destination is one of its operands.
	ErrOverlap = errors.New("matrix: destination overlaps operand")

	// ErrUnknownLoopOrder indicates a LoopOrder outside the declared set.
	ErrUnknownLoopOrder = errors.New("matrix: unknown loop order")

	// ErrUnknownBlockMode indicates a BlockMode outside the declared set.
	ErrUnknownBlockMode = errors.New("matrix: unknown block mode")
)

// ErrOddSize is returned by Decompose for odd sizes. It is a refinement of
// ErrDimensionMismatch, so errors.Is(err, ErrDimensionMismatch) holds too.
var ErrOddSize = fmt.Errorf("%w: size is odd", ErrDimensionMismatch)
