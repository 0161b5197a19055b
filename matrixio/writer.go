// SPDX-License-Identifier: MIT

package matrixio

import (
	"bufio"
	"io"
	"strconv"

	"github.com/katalvlaran/strassen/matrix"
)

// Write prints m row by row, each cell followed by a space, then a blank
// line. Non-live matrices fail with the matrix liveness errors.
func Write(w io.Writer, m *matrix.Dense) error {
	if err := matrix.ValidateLive(m); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 24)
	var i int
	var row []int
	var err error
	for i = 0; i < m.Size(); i++ {
		if row, err = m.Row(i); err != nil {
			return err
		}
		for _, v := range row {
			buf = strconv.AppendInt(buf[:0], int64(v), 10)
			buf = append(buf, ' ')
			if _, err = bw.Write(buf); err != nil {
				return err
			}
		}
		if err = bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	if err = bw.WriteByte('\n'); err != nil {
		return err
	}

	return bw.Flush()
}

// WriteText prints the operand file format: a "n n" header and the rows.
// Its output is readable by Reader.
func WriteText(w io.Writer, m *matrix.Dense) error {
	if err := matrix.ValidateLive(m); err != nil {
		return err
	}
	n := strconv.Itoa(m.Size())
	if _, err := io.WriteString(w, n+" "+n+"\n"); err != nil {
		return err
	}

	return Write(w, m)
}
