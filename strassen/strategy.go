// SPDX-License-Identifier: MIT
// Package strassen: strategy selection.
//
// Purpose:
//   - Strategy is the explicit dispatch over the two algorithm families:
//     Naive (cubic kernel, one loop order) and Strassen (Policy).
//   - Preset maps the numbered codes 0..6 of the command line tool to
//     strategies and their display names.
//
// Notes:
//   - Presets are rebuilt per call from option lists; nothing is cached and
//     no selection state lives outside the returned value.

package strassen

import (
	"fmt"

	"github.com/katalvlaran/strassen/matrix"
)

// Strategy is a complete multiplication configuration.
type Strategy interface {
	// Multiply returns a fresh owning A×B.
	Multiply(a, b *matrix.Dense) (*matrix.Dense, error)
	String() string
}

// Naive multiplies with the cubic kernel only.
type Naive struct {
	Order matrix.LoopOrder
}

// Multiply implements Strategy.
func (s Naive) Multiply(a, b *matrix.Dense) (*matrix.Dense, error) {
	return matrix.Product(a, b, s.Order)
}

func (s Naive) String() string { return "naive/" + s.Order.String() }

// Strassen multiplies with the seven-product scheme under Policy.
type Strassen struct {
	Policy Policy
}

// Multiply implements Strategy.
func (s Strassen) Multiply(a, b *matrix.Dense) (*matrix.Dense, error) {
	return Multiply(a, b, s.Policy)
}

func (s Strassen) String() string {
	p := s.Policy

	return fmt.Sprintf("strassen/%s/%s/%s/%s", p.LoopOrder, p.Blocks, p.Depth, p.Concurrency)
}

// PresetInfo names one numbered preset.
type PresetInfo struct {
	Code int
	Name string
}

// preset builds the strategy for one code from caller options.
type preset struct {
	name  string
	build func(opts []Option) Strategy
}

// strassenPreset applies the preset's settings, then the caller's options.
func strassenPreset(base ...Option) func([]Option) Strategy {
	return func(opts []Option) Strategy {
		return Strassen{Policy: NewPolicy(base...).With(opts...)}
	}
}

// presets is indexed by code. Codes and names follow the command line
// contract of the strassen tool.
var presets = []preset{
	{
		name:  "ordinary",
		build: func([]Option) Strategy { return Naive{Order: matrix.NaiveIJK} },
	},
	{
		name:  "ordinary + cache friendly",
		build: func([]Option) Strategy { return Naive{Order: matrix.RowMajorAccumulate} },
	},
	{
		name:  "strassen + cache friendly",
		build: strassenPreset(WithLoopOrder(matrix.RowMajorAccumulate)),
	},
	{
		name:  "strassen + cache friendly + multithread",
		build: strassenPreset(WithLoopOrder(matrix.RowMajorAccumulate), WithForkJoin()),
	},
	{
		name: "strassen + cache friendly + multithread + keep strassen",
		build: strassenPreset(WithLoopOrder(matrix.RowMajorAccumulate), WithForkJoin(),
			WithFullRecursion(DefaultThreshold)),
	},
	{
		name: "strassen + cache friendly + multithread + keep strassen + shadow copy",
		build: strassenPreset(WithLoopOrder(matrix.RowMajorAccumulate), WithForkJoin(),
			WithFullRecursion(DefaultThreshold), WithAliasing()),
	},
	{
		name: "strassen + multithread + keep strassen + shadow copy",
		build: strassenPreset(WithLoopOrder(matrix.NaiveIJK), WithForkJoin(),
			WithFullRecursion(DefaultThreshold), WithAliasing()),
	},
}

// named overrides a strategy's String with its preset name.
type named struct {
	Strategy
	name string
}

func (n named) String() string { return n.name }

// Presets lists every preset in code order.
func Presets() []PresetInfo {
	out := make([]PresetInfo, len(presets))
	for code, p := range presets {
		out[code] = PresetInfo{Code: code, Name: p.name}
	}

	return out
}

// Preset returns the strategy for code. opts are applied after the preset's
// own settings and are ignored by the naive presets; use them for the
// threshold and logger.
//
// Errors: ErrUnknownStrategy for codes outside Presets().
func Preset(code int, opts ...Option) (Strategy, error) {
	if code < 0 || code >= len(presets) {
		return nil, fmt.Errorf("%w: %d (valid 0..%d)", ErrUnknownStrategy, code, len(presets)-1)
	}
	p := presets[code]

	return named{Strategy: p.build(opts), name: p.name}, nil
}
