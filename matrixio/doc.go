// SPDX-License-Identifier: MIT

// Package matrixio reads and prints square integer matrices in the plain
// text format of the strassen command.
//
// Format: whitespace-separated integers. Each matrix starts with a header
// "m n" (rows, columns; they must be equal) followed by m*n cells in
// row-major order. A file usually holds two matrices, the operands A and B.
//
//	2 2
//	1 2
//	3 4
//
// Output writes every row as "v " cells followed by a newline, and one
// blank line after the matrix.
package matrixio
