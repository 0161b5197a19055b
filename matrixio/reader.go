// SPDX-License-Identifier: MIT

package matrixio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"math/bits"
	"os"
	"strconv"

	"github.com/katalvlaran/strassen/matrix"
)

// maxPrealloc caps the cell buffer reserved from an untrusted header.
const maxPrealloc = 1 << 16

// Reader decodes consecutive matrices from a token stream.
type Reader struct {
	sc    *bufio.Scanner
	count int // matrices decoded so far
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &Reader{sc: sc}
}

// Next decodes the next matrix.
//
// Errors:
//   - io.EOF when the input ends cleanly before a header;
//   - ErrMalformedInput for bad tokens, negative sizes or truncated cells;
//   - ErrNonSquare when the header's counts differ;
//   - matrix.ErrAllocation when rows*rows overflows int.
//
// Memory grows with the cells actually present in the input; the header
// alone never triggers a large allocation.
func (r *Reader) Next() (*matrix.Dense, error) {
	rows, err := r.scanInt("rows")
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}

		return nil, r.errorf(err)
	}
	cols, err := r.scanInt("columns")
	if err != nil {
		return nil, r.errorf(truncated(err))
	}
	if rows < 0 || cols < 0 {
		return nil, r.errorf(fmt.Errorf("%w: negative size %d×%d", ErrMalformedInput, rows, cols))
	}
	if rows != cols {
		return nil, r.errorf(fmt.Errorf("%w: %d×%d", ErrNonSquare, rows, cols))
	}

	hi, total := bits.Mul(uint(rows), uint(rows))
	if hi != 0 || total > math.MaxInt {
		return nil, r.errorf(fmt.Errorf("%w: %d×%d", matrix.ErrAllocation, rows, rows))
	}

	// Cells are buffered before the matrix is allocated, so a truncated
	// input with a huge header fails on the missing tokens, not on memory.
	cells := make([]int, 0, min(int(total), maxPrealloc))
	var v int
	for k := 0; k < int(total); k++ {
		if v, err = r.scanInt("cell"); err != nil {
			return nil, r.errorf(fmt.Errorf("(%d,%d): %w", k/rows, k%rows, truncated(err)))
		}
		cells = append(cells, v)
	}

	m, err := matrix.NewDense(rows)
	if err != nil {
		return nil, r.errorf(err)
	}
	if err = m.Apply(func(i, j, _ int) int { return cells[i*rows+j] }); err != nil {
		m.Destroy()

		return nil, r.errorf(err)
	}
	r.count++

	return m, nil
}

// scanInt scans one integer token. io.EOF is returned unwrapped at end of input.
func (r *Reader) scanInt(what string) (int, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return 0, err
		}

		return 0, io.EOF
	}
	tok := r.sc.Text()
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrMalformedInput, what, tok)
	}

	return v, nil
}

func (r *Reader) errorf(err error) error {
	return fmt.Errorf("matrixio: matrix %d: %w", r.count, err)
}

// truncated maps an end of input inside a matrix to ErrMalformedInput.
func truncated(err error) error {
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected end of input", ErrMalformedInput)
	}

	return err
}

// ReadPair decodes the operands A and B. A missing B is ErrMalformedInput.
func ReadPair(r io.Reader) (a, b *matrix.Dense, err error) {
	rd := NewReader(r)
	if a, err = rd.Next(); err != nil {
		return nil, nil, truncated(err)
	}
	if b, err = rd.Next(); err != nil {
		a.Destroy()

		return nil, nil, truncated(err)
	}

	return a, b, nil
}

// ReadFile opens path and decodes the operand pair from it.
func ReadFile(path string) (a, b *matrix.Dense, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	return ReadPair(bufio.NewReader(f))
}
