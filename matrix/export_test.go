// SPDX-License-Identifier: MIT

package matrix

// Test bridge (white-box) for storage internals.
//
// Purpose:
//   - Expose buffer identity and offsets to matrix_test only, so aliasing
//     tests can assert that views share the owner's buffer without widening
//     the production API.

// SharesBuffer reports whether a and b are backed by the same buffer.
func SharesBuffer(a, b *Dense) bool {
	if len(a.data) == 0 || len(b.data) == 0 {
		return false
	}

	return &a.data[0] == &b.data[0]
}

// OffsetOf returns the buffer offset of cell (0,0).
func OffsetOf(m *Dense) int { return m.off }

// OwnerOf returns the root owner of an alias (nil for owners).
func OwnerOf(m *Dense) *Dense { return m.owner }

// Allocate exposes the single allocation site.
var Allocate = allocate
