// SPDX-License-Identifier: MIT

package matrixio_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/strassen/matrix"
	"github.com/katalvlaran/strassen/matrixio"
	"github.com/stretchr/testify/require"
)

const pairText = `2 2
1 2
3 4
2 2
5 6
7 8
`

func TestReader_Sequence(t *testing.T) {
	r := matrixio.NewReader(strings.NewReader(pairText))

	a, err := r.Next()
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 2}, {3, 4}}, a.ToRows())

	b, err := r.Next()
	require.NoError(t, err)
	require.Equal(t, [][]int{{5, 6}, {7, 8}}, b.ToRows())

	_, err = r.Next()
	require.ErrorIs(t, err, io.EOF)
}

func TestReader_Whitespace(t *testing.T) {
	r := matrixio.NewReader(strings.NewReader("  3\t3\n-1 0 0\n\n0 -1 0 0 0\r\n-1  "))
	m, err := r.Next()
	require.NoError(t, err)
	require.Equal(t, [][]int{{-1, 0, 0}, {0, -1, 0}, {0, 0, -1}}, m.ToRows())
}

func TestReader_ZeroSize(t *testing.T) {
	m, err := matrixio.NewReader(strings.NewReader("0 0")).Next()
	require.NoError(t, err)
	require.Equal(t, 0, m.Size())
}

func TestReader_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"non-square", "2 3 1 2 3 4 5 6", matrixio.ErrNonSquare},
		{"bad header", "x 2", matrixio.ErrMalformedInput},
		{"missing columns", "2", matrixio.ErrMalformedInput},
		{"negative", "-2 -2", matrixio.ErrMalformedInput},
		{"bad cell", "2 2 1 2 z 4", matrixio.ErrMalformedInput},
		{"truncated", "2 2 1 2 3", matrixio.ErrMalformedInput},
		{"huge header truncated", "100000 100000 1 2 3", matrixio.ErrMalformedInput},
		{"overflow", "99999999999999999999 1", matrixio.ErrMalformedInput},
		{"too large", "4611686018427387904 4611686018427387904", matrix.ErrAllocation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrixio.NewReader(strings.NewReader(tc.input)).Next()
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestReadPair(t *testing.T) {
	a, b, err := matrixio.ReadPair(strings.NewReader(pairText))
	require.NoError(t, err)
	require.Equal(t, 2, a.Size())
	require.Equal(t, 2, b.Size())

	_, _, err = matrixio.ReadPair(strings.NewReader("1 1 5"))
	require.ErrorIs(t, err, matrixio.ErrMalformedInput, "missing second operand")

	_, _, err = matrixio.ReadPair(strings.NewReader(""))
	require.ErrorIs(t, err, matrixio.ErrMalformedInput)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pair.txt")
	require.NoError(t, os.WriteFile(path, []byte(pairText), 0o600))

	a, b, err := matrixio.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 2}, {3, 4}}, a.ToRows())
	require.Equal(t, [][]int{{5, 6}, {7, 8}}, b.ToRows())

	_, _, err = matrixio.ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestWrite(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]int{{19, 22}, {-43, 50}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, matrixio.Write(&buf, m))
	require.Equal(t, "19 22 \n-43 50 \n\n", buf.String())

	require.ErrorIs(t, matrixio.Write(&buf, nil), matrix.ErrNilMatrix)
	m.Destroy()
	require.ErrorIs(t, matrixio.Write(&buf, m), matrix.ErrReleased)
}

func TestWriteText_RoundTrip(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]int{{1, -2, 3}, {4, 5, -6}, {7, 8, 9}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, matrixio.WriteText(&buf, m))
	require.NoError(t, matrixio.WriteText(&buf, m))

	r := matrixio.NewReader(&buf)
	for i := 0; i < 2; i++ {
		got, err := r.Next()
		require.NoError(t, err)
		require.True(t, m.Equal(got))
	}
	_, err = r.Next()
	require.ErrorIs(t, err, io.EOF)
}
