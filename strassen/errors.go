// SPDX-License-Identifier: MIT
// Package strassen: sentinel error set.
// Operand failures from the matrix package (ErrDimensionMismatch,
// ErrAllocation, ErrReleased, ...) pass through wrapped and still match with
// errors.Is.

package strassen

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/strassen/matrix"
)

var (
	// ErrInvalidPolicy indicates a Policy with an unknown enum value or a
	// threshold below 1.
	ErrInvalidPolicy = errors.New("strassen: invalid policy")

	// ErrUnknownStrategy indicates a preset code outside Presets().
	ErrUnknownStrategy = errors.New("strassen: unknown strategy code")
)

// ErrNotPowerOfTwo rejects sizes that cannot be halved down to the base case.
// It refines matrix.ErrDimensionMismatch.
var ErrNotPowerOfTwo = fmt.Errorf("%w: size is not a power of two", matrix.ErrDimensionMismatch)

// Operation tags for error wrapping.
const (
	opMultiply = "strassen.Multiply"
	opCombine  = "strassen.combine"
)

// strassenErrorf wraps err with an operation or product tag.
// Use only when err != nil.
func strassenErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
