// Package strassen is the module root of a square integer matrix
// multiplication toolkit built around Strassen's algorithm.
//
// Everything is organized under these packages:
//
//	matrix/        Dense storage (owning or aliasing views), elementwise
//	               add/sub, the cubic kernel in two loop orders,
//	               quadrant decomposition and recombination
//	strassen/      Policy and options, the seven-product engine with
//	               single-level or recursive depth, fork-join scheduling,
//	               numbered strategy presets
//	matrixio/      plain-text reader and printer for operand files
//	cmd/strassen/  command line tool: strassen <path> <type> [print]
//	examples/      runnable scenarios (walk counting, preset timing)
//
// Quick start:
//
//	a, b, _ := matrixio.ReadFile("pair.txt")
//	s, _ := strassen.Preset(5, strassen.WithThreshold(32))
//	c, err := s.Multiply(a, b)
package strassen
