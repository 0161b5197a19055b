// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) with an ownership/aliasing split.
//
// Purpose:
//   - Provide one contiguous row-major int buffer per owning matrix plus a
//     per-instance row table (rows[i] is a slice of length size).
//   - Provide zero-copy aliased windows (NewAlias) whose rows point into the
//     owner's buffer with the owner's stride.
//   - Guarantee safety at the public surface: At/Set/Row return errors
//     instead of panicking, and every operation rejects released matrices or
//     aliases whose owner was released.
//
// Complexity quicksheet:
//   - NewDense: O(n²) zero-init; NewAlias: O(n) row table; At/Set/Row: O(1);
//     Clone/Equal/String: O(n²); Destroy: O(1).

package matrix

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"
	ctxSet       = "Set"
	ctxRow       = "Row"
	ctxAlias     = "NewAlias"
	ctxTryCreate = "TryCreate"
	ctxFromRows  = "NewDenseFromRows"
	ctxClone     = "Clone"
	ctxApply     = "Apply"
	ctxFill      = "Fill"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_fmtNotLive  = "<not live>\n"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// sizeErrorf wraps an error with a Dense context and a single size argument.
func sizeErrorf(method string, size int, err error) error {
	return fmt.Errorf("Dense.%s(%d): %w", method, size, err)
}

// Dense is a square row-major matrix of ints.
//   - size is the row length and row count; stride is the distance between
//     consecutive rows in data (== size for owners, the owner's width for aliases).
//   - data is the owner's flat buffer; off locates cell (0,0) inside it.
//   - rows is the per-instance row table; rows[i] == data[off+i*stride:][:size].
//   - owner is nil for Owning matrices and the root owner for Aliasing ones.
//
// The zero value is an unsized matrix: it can be passed as a destination and
// is sized by the first operation that writes it (see TryCreate).
type Dense struct {
	size     int       // rows == cols
	stride   int       // row step inside data
	off      int       // offset of cell (0,0) inside data
	data     []int     // owner buffer (borrowed for aliases)
	rows     [][]int   // row table; nil until sized and after Destroy
	own      Ownership // Owning or Aliasing
	owner    *Dense    // root owner of the borrowed buffer (aliases only)
	released bool      // set by Destroy
}

var _ fmt.Stringer = (*Dense)(nil)

// allocate obtains a zeroed buffer of size*size ints.
// MAIN DESCRIPTION:
//   - Single allocation site for every owning buffer in the package.
//
// Implementation:
//   - Stage 1: reject negative sizes (ErrInvalidDimensions).
//   - Stage 2: compute size*size with overflow detection (ErrAllocation).
//   - Stage 3: make() under recover, so runtime "len out of range" panics
//     surface as ErrAllocation instead of crashing the caller.
//
// Notes:
//   - A genuine out-of-memory condition is fatal in the Go runtime and cannot
//     be recovered; it aborts the process, which is the documented behavior
//     for allocation failure.
func allocate(size int) (buf []int, err error) {
	if size < 0 {
		return nil, ErrInvalidDimensions
	}
	hi, cells := bits.Mul(uint(size), uint(size))
	if hi != 0 || cells > math.MaxInt {
		return nil, ErrAllocation
	}

	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, fmt.Errorf("%w: %v", ErrAllocation, r)
		}
	}()

	return make([]int, int(cells)), nil
}

// rowTable builds size row slices over data starting at off, spaced by stride.
// Each row is capped at its own length so appends can never spill into a neighbor.
func rowTable(data []int, off, stride, size int) [][]int {
	rows := make([][]int, size)
	var i, start int
	for i = 0; i < size; i++ {
		start = off + i*stride
		rows[i] = data[start : start+size : start+size]
	}

	return rows
}

// newOwning wraps a freshly allocated buffer into an Owning Dense.
func newOwning(size int, buf []int) *Dense {
	return &Dense{
		size:   size,
		stride: size,
		data:   buf,
		rows:   rowTable(buf, 0, size, size),
		own:    Owning,
	}
}

// NewDense creates an n×n zero matrix that owns its buffer.
// MAIN DESCRIPTION:
//   - Public constructor: one contiguous buffer of n*n ints and a row table
//     of n slices into it, each spaced by n.
//
// Inputs:
//   - size: n ≥ 0 (0 yields a legal empty matrix).
//
// Errors:
//   - ErrInvalidDimensions (size < 0), ErrAllocation (buffer unobtainable).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewDense(size int) (*Dense, error) {
	buf, err := allocate(size)
	if err != nil {
		return nil, sizeErrorf("NewDense", size, err)
	}

	return newOwning(size, buf), nil
}

// NewAlias creates a size×size view of parent starting at (rowOffset, colOffset).
// MAIN DESCRIPTION:
//   - Zero-copy borrowed window: reads and writes go straight to the parent's
//     buffer. The view never releases that buffer.
//
// Implementation:
//   - Stage 1: validate parent is live and the window fits inside it.
//   - Stage 2: resolve the root owner (aliases of aliases share one owner)
//     and compose the buffer offset; keep the owner's stride.
//   - Stage 3: build the per-instance row table.
//
// Errors:
//   - ErrNilMatrix, ErrReleased, ErrUnsized (parent), ErrBadShape (window).
//
// Complexity:
//   - Time O(size), Space O(size) for the row table.
//
// Notes:
//   - The alias must not be used after its owner is destroyed; every
//     operation checks this and fails with ErrReleased.
func NewAlias(parent *Dense, rowOffset, colOffset, size int) (*Dense, error) {
	if err := parent.live(); err != nil {
		return nil, denseErrorf(ctxAlias, rowOffset, colOffset, err)
	}
	if rowOffset < 0 || colOffset < 0 || size < 0 ||
		rowOffset+size > parent.size || colOffset+size > parent.size {
		return nil, denseErrorf(ctxAlias, rowOffset, colOffset, ErrBadShape)
	}

	root := parent
	if parent.owner != nil {
		root = parent.owner
	}
	off := parent.off + rowOffset*parent.stride + colOffset

	return &Dense{
		size:   size,
		stride: parent.stride,
		off:    off,
		data:   parent.data,
		rows:   rowTable(parent.data, off, parent.stride, size),
		own:    Aliasing,
		owner:  root,
	}, nil
}

// NewDenseFromRows copies a square [][]int into a new owning matrix.
// Errors: ErrNonSquare when any row length differs from len(rows).
func NewDenseFromRows(rows [][]int) (*Dense, error) {
	n := len(rows)
	for i, r := range rows {
		if len(r) != n {
			return nil, denseErrorf(ctxFromRows, i, len(r), ErrNonSquare)
		}
	}
	m, err := NewDense(n)
	if err != nil {
		return nil, err
	}
	for i, r := range rows {
		copy(m.rows[i], r)
	}

	return m, nil
}

// NewIdentity returns the n×n identity matrix.
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.rows[i][i] = 1
	}

	return m, nil
}

// TryCreate sizes an unsized matrix; it is a no-op when already sized to size.
// MAIN DESCRIPTION:
//   - Lets destinations be pre-sized by the caller or lazily sized by the
//     first operation that writes them.
//
// Errors:
//   - ErrNilMatrix (nil receiver), ErrReleased (destroyed matrix),
//     ErrDimensionMismatch (already sized to a different size),
//     ErrInvalidDimensions / ErrAllocation (from the allocation).
//
// Complexity:
//   - O(1) when sized, O(n²) when it allocates.
func (m *Dense) TryCreate(size int) error {
	if m == nil {
		return sizeErrorf(ctxTryCreate, size, ErrNilMatrix)
	}
	if m.released {
		return sizeErrorf(ctxTryCreate, size, ErrReleased)
	}
	if m.rows != nil {
		if m.size != size {
			return sizeErrorf(ctxTryCreate, size, ErrDimensionMismatch)
		}

		return nil
	}

	buf, err := allocate(size)
	if err != nil {
		return sizeErrorf(ctxTryCreate, size, err)
	}
	*m = *newOwning(size, buf)

	return nil
}

// Destroy releases the matrix.
// Owners drop their buffer (every alias of it becomes unusable); aliases only
// drop their row table and their borrowed reference. Destroy is idempotent
// and safe on nil.
func (m *Dense) Destroy() {
	if m == nil || m.released {
		return
	}
	m.rows = nil // per-instance table, always dropped
	m.data = nil // owners release the buffer; aliases forget the borrow
	m.released = true
}

// live reports whether m can be read or written.
func (m *Dense) live() error {
	switch {
	case m == nil:
		return ErrNilMatrix
	case m.released:
		return ErrReleased
	case m.owner != nil && m.owner.released:
		return ErrReleased
	case m.rows == nil:
		return ErrUnsized
	}

	return nil
}

// Size returns n for an n×n matrix (0 when unsized or nil).
func (m *Dense) Size() int {
	if m == nil {
		return 0
	}

	return m.size
}

// Stride returns the row step inside the backing buffer.
// It equals Size() for owners and the owner's width for aliases; 0 for nil.
func (m *Dense) Stride() int {
	if m == nil {
		return 0
	}

	return m.stride
}

// Ownership reports whether m owns or borrows its buffer (Owning for nil).
func (m *Dense) Ownership() Ownership {
	if m == nil {
		return Owning
	}

	return m.own
}

// IsAlias is shorthand for Ownership() == Aliasing.
func (m *Dense) IsAlias() bool { return m.Ownership() == Aliasing }

// Released reports whether m was destroyed, or borrows from a destroyed owner.
func (m *Dense) Released() bool {
	if m == nil {
		return false
	}

	return m.released || (m.owner != nil && m.owner.released)
}

// At returns the value at (row, col).
// Errors: ErrOutOfRange for bad indices, plus the liveness sentinels.
func (m *Dense) At(row, col int) (int, error) {
	if err := m.live(); err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}
	if row < 0 || row >= m.size || col < 0 || col >= m.size {
		return 0, denseErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return m.rows[row][col], nil
}

// Set stores v at (row, col). Writes through an alias land in the owner's buffer.
func (m *Dense) Set(row, col, v int) error {
	if err := m.live(); err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if row < 0 || row >= m.size || col < 0 || col >= m.size {
		return denseErrorf(ctxSet, row, col, ErrOutOfRange)
	}
	m.rows[row][col] = v

	return nil
}

// Row returns row i as a slice of length Size() sharing m's storage.
// The slice capacity is capped at its length.
func (m *Dense) Row(i int) ([]int, error) {
	if err := m.live(); err != nil {
		return nil, denseErrorf(ctxRow, i, 0, err)
	}
	if i < 0 || i >= m.size {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return m.rows[i], nil
}

// Clone returns an independent owning copy with a compact stride.
// Cloning an alias materializes the window.
func (m *Dense) Clone() (*Dense, error) {
	if err := m.live(); err != nil {
		return nil, sizeErrorf(ctxClone, m.Size(), err)
	}
	c, err := NewDense(m.size)
	if err != nil {
		return nil, err
	}
	for i, r := range m.rows {
		copy(c.rows[i], r)
	}

	return c, nil
}

// Equal reports whether m and other are live, of equal size and equal cell by cell.
// Ownership and stride are ignored.
func (m *Dense) Equal(other *Dense) bool {
	if m.live() != nil || other.live() != nil || m.size != other.size {
		return false
	}
	var i, j int
	var ra, rb []int
	for i = 0; i < m.size; i++ {
		ra, rb = m.rows[i], other.rows[i]
		for j = 0; j < m.size; j++ {
			if ra[j] != rb[j] {
				return false
			}
		}
	}

	return true
}

// ToRows returns a copy of the cells as [][]int, or nil when m is not live.
func (m *Dense) ToRows() [][]int {
	if m.live() != nil {
		return nil
	}
	out := make([][]int, m.size)
	for i, r := range m.rows {
		out[i] = append([]int(nil), r...)
	}

	return out
}

// Do visits each cell in row-major order; it stops when f returns false.
// Released or unsized matrices are not visited.
func (m *Dense) Do(f func(i, j, v int) bool) {
	if m.live() != nil {
		return
	}
	var i, j int
	for i = 0; i < m.size; i++ {
		for j = 0; j < m.size; j++ {
			if !f(i, j, m.rows[i][j]) {
				return
			}
		}
	}
}

// Apply replaces every cell with f(i, j, v) in row-major order.
func (m *Dense) Apply(f func(i, j, v int) int) error {
	if err := m.live(); err != nil {
		return sizeErrorf(ctxApply, m.Size(), err)
	}
	var i, j int
	var r []int
	for i = 0; i < m.size; i++ {
		r = m.rows[i]
		for j = 0; j < m.size; j++ {
			r[j] = f(i, j, r[j])
		}
	}

	return nil
}

// Fill sets every cell of m to v. Aliases fill only their window; the rest
// of the owner's buffer is untouched.
// Errors: ErrNilMatrix, ErrReleased, ErrUnsized.
func (m *Dense) Fill(v int) error {
	if err := m.live(); err != nil {
		return sizeErrorf(ctxFill, m.Size(), err)
	}
	var j int
	for _, r := range m.rows {
		for j = range r {
			r[j] = v
		}
	}

	return nil
}

// zero clears every cell of a live matrix row by row (aliases clear only their window).
func (m *Dense) zero() {
	for _, r := range m.rows {
		clear(r)
	}
}

// String renders rows as "[a, b]\n" lines for diagnostics.
func (m *Dense) String() string {
	if m.live() != nil {
		return _fmtNotLive
	}
	var b strings.Builder
	var i, j int
	for i = 0; i < m.size; i++ {
		b.WriteString(_fmtRowOpen)
		for j = 0; j < m.size; j++ {
			b.WriteString(strconv.Itoa(m.rows[i][j]))
			if j+1 < m.size {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
