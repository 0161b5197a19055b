// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for operand checks.
//  - Keep kernels minimal by delegating nil/liveness/size checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with matrixErrorf.
//
// Determinism & Performance:
//  - All checks are O(1), pure and allocation-free on success.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateLive ensures m is non-nil, sized, not destroyed, and (for aliases)
// that its owner is not destroyed.
//
// Errors: ErrNilMatrix, ErrReleased, ErrUnsized.
// Complexity: O(1).
func ValidateLive(m *Dense) error {
	if err := m.live(); err != nil {
		return validatorErrorf("ValidateLive", err)
	}

	return nil
}

// ValidateSameSize ensures a and b have equal sizes.
// Assumes both are non-nil (caller must ensure).
func ValidateSameSize(a, b *Dense) error {
	if a.size != b.size {
		return validatorErrorf(fmt.Sprintf("ValidateSameSize(%d,%d)", a.size, b.size), ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinary is the composite check for two-operand kernels:
// ValidateLive(a) → ValidateLive(b) → ValidateSameSize(a, b).
func ValidateBinary(a, b *Dense) error {
	if err := ValidateLive(a); err != nil {
		return err
	}
	if err := ValidateLive(b); err != nil {
		return err
	}

	return ValidateSameSize(a, b)
}

// ValidateEven ensures m has an even size so it splits into four quadrants.
// Errors: ErrOddSize (which also matches ErrDimensionMismatch).
func ValidateEven(m *Dense) error {
	if m.size%2 != 0 {
		return validatorErrorf(fmt.Sprintf("ValidateEven(%d)", m.size), ErrOddSize)
	}

	return nil
}

// validateProductDestination rejects a destination that is one of the
// operands: the multiply kernel zeroes the destination before reading them.
func validateProductDestination(a, b, c *Dense) error {
	if c == nil {
		return validatorErrorf("ValidateDestination", ErrNilMatrix)
	}
	if c == a || c == b {
		return validatorErrorf("ValidateDestination", ErrOverlap)
	}

	return nil
}
