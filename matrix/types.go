// SPDX-License-Identifier: MIT

// Package matrix: domain enums shared by storage, kernels and block ops.
// This file contains ONLY small value types (ownership tag, loop order,
// block mode, quadrant indices) and their String forms.
package matrix

// Ownership tells whether a Dense owns its backing buffer.
type Ownership int

const (
	// Owning matrices allocated their buffer and release it on Destroy.
	Owning Ownership = iota
	// Aliasing matrices borrow a window of another matrix's buffer and never
	// release it.
	Aliasing
)

// String returns "owning" or "aliasing".
func (o Ownership) String() string {
	switch o {
	case Owning:
		return "owning"
	case Aliasing:
		return "aliasing"
	default:
		return "unknown"
	}
}

// LoopOrder selects the index order of the cubic multiplication kernel.
// Both orders compute the same integer result; they differ only in how
// memory is walked.
type LoopOrder int

const (
	// RowMajorAccumulate walks i, k, j: row k of B and row i of C are read
	// and written sequentially (cache friendly for row-major storage).
	RowMajorAccumulate LoopOrder = iota
	// NaiveIJK walks i, j, k and reads B column-wise.
	NaiveIJK
)

// String returns the loop-order name.
func (o LoopOrder) String() string {
	switch o {
	case RowMajorAccumulate:
		return "ikj"
	case NaiveIJK:
		return "ijk"
	default:
		return "unknown"
	}
}

// Valid reports whether o is a declared loop order.
func (o LoopOrder) Valid() bool { return o == RowMajorAccumulate || o == NaiveIJK }

// BlockMode selects how Decompose produces quadrants.
type BlockMode int

const (
	// Copy materializes each quadrant into a fresh Owning matrix.
	Copy BlockMode = iota
	// Alias builds Aliasing views into the parent buffer (zero data movement).
	Alias
)

// String returns "copy" or "alias".
func (m BlockMode) String() string {
	switch m {
	case Copy:
		return "copy"
	case Alias:
		return "alias"
	default:
		return "unknown"
	}
}

// Valid reports whether m is a declared block mode.
func (m BlockMode) Valid() bool { return m == Copy || m == Alias }

// Quadrant indices into a QuadrantSet.
const (
	NW = iota // top-left
	NE        // top-right
	SW        // bottom-left
	SE        // bottom-right

	quadrants = 4
)

// QuadrantSet holds the four half-size blocks of a matrix, ordered NW, NE, SW, SE.
type QuadrantSet [quadrants]*Dense

// Size returns the common quadrant size, or 0 when the NW slot is empty.
func (q QuadrantSet) Size() int {
	if q[NW] == nil {
		return 0
	}

	return q[NW].size
}

// Destroy releases every quadrant. Aliasing quadrants drop only their row
// tables; the parent buffer is untouched. Nil slots are skipped.
func (q QuadrantSet) Destroy() {
	for _, m := range q {
		if m != nil {
			m.Destroy()
		}
	}
}
