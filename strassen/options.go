// SPDX-License-Identifier: MIT

// Package strassen: the multiplication Policy and its functional options.
// This file defines:
//   - documented defaults (constants),
//   - Policy (explicit configuration value threaded through every call),
//   - WithX constructors (panic on nonsensical values),
//   - NewPolicy / DefaultPolicy / Policy.Validate.
//
// A Policy is a plain value: no package-level mutable state is consulted.
// Two calls with different policies may run concurrently.
package strassen

import (
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/strassen/matrix"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultLoopOrder is the cubic kernel used at the base case.
	DefaultLoopOrder = matrix.RowMajorAccumulate

	// DefaultBlockMode materializes quadrants as owning copies.
	DefaultBlockMode = matrix.Copy

	// DefaultDepth performs one decomposition level.
	DefaultDepth = SingleLevel

	// DefaultThreshold is the largest size multiplied with the cubic kernel
	// under FullRecursion. 1 recurses all the way down to scalars.
	DefaultThreshold = 1

	// DefaultConcurrency runs the seven products on the caller's goroutine.
	DefaultConcurrency = Sequential
)

// productCount is the number of Strassen sub-products per level.
const productCount = 7

const (
	panicThresholdInvalid = "strassen: WithThreshold: threshold must be >= 1"
	panicOrderInvalid     = "strassen: WithLoopOrder: unknown loop order"
	panicBlockInvalid     = "strassen: WithBlockMode: unknown block mode"
)

// Policy is the full configuration of one Multiply call.
type Policy struct {
	LoopOrder   matrix.LoopOrder // cubic kernel order at the base case
	Blocks      matrix.BlockMode // quadrant materialization at every level
	Depth       Depth            // SingleLevel or FullRecursion
	Threshold   int              // >= 1; FullRecursion only
	Concurrency Concurrency      // top-level product scheduling
	Logger      *slog.Logger     // nil ⇒ discard
}

// Option mutates a Policy under construction.
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Policy)

// WithLoopOrder selects the base-case kernel.
// Panics on an undeclared order.
func WithLoopOrder(order matrix.LoopOrder) Option {
	if !order.Valid() {
		panic(panicOrderInvalid)
	}

	return func(p *Policy) { p.LoopOrder = order }
}

// WithBlockMode selects how quadrants are produced at every level.
// Panics on an undeclared mode.
func WithBlockMode(mode matrix.BlockMode) Option {
	if !mode.Valid() {
		panic(panicBlockInvalid)
	}

	return func(p *Policy) { p.Blocks = mode }
}

// WithAliasing is shorthand for WithBlockMode(matrix.Alias).
func WithAliasing() Option { return WithBlockMode(matrix.Alias) }

// WithCopying is shorthand for WithBlockMode(matrix.Copy).
func WithCopying() Option { return WithBlockMode(matrix.Copy) }

// WithSingleLevel decomposes once and multiplies sub-products naively.
func WithSingleLevel() Option {
	return func(p *Policy) { p.Depth = SingleLevel }
}

// WithFullRecursion recurses until the operand size is <= threshold.
// Panics if threshold < 1.
func WithFullRecursion(threshold int) Option {
	if threshold < 1 {
		panic(panicThresholdInvalid)
	}

	return func(p *Policy) {
		p.Depth = FullRecursion
		p.Threshold = threshold
	}
}

// WithThreshold changes the recursion cutoff without touching the depth.
// Panics if threshold < 1.
func WithThreshold(threshold int) Option {
	if threshold < 1 {
		panic(panicThresholdInvalid)
	}

	return func(p *Policy) { p.Threshold = threshold }
}

// WithForkJoin computes the seven top-level products concurrently.
func WithForkJoin() Option {
	return func(p *Policy) { p.Concurrency = ForkJoin }
}

// WithSequential computes the seven top-level products one after another.
func WithSequential() Option {
	return func(p *Policy) { p.Concurrency = Sequential }
}

// WithLogger attaches a structured logger for debug tracing. nil disables it.
func WithLogger(l *slog.Logger) Option {
	return func(p *Policy) { p.Logger = l }
}

// DefaultPolicy returns the policy with every field at its Default* value.
func DefaultPolicy() Policy {
	return Policy{
		LoopOrder:   DefaultLoopOrder,
		Blocks:      DefaultBlockMode,
		Depth:       DefaultDepth,
		Threshold:   DefaultThreshold,
		Concurrency: DefaultConcurrency,
	}
}

// NewPolicy applies opts over DefaultPolicy in order; later options win.
func NewPolicy(opts ...Option) Policy {
	p := DefaultPolicy()
	for _, opt := range opts {
		opt(&p)
	}

	return p
}

// With returns a copy of p with opts applied.
func (p Policy) With(opts ...Option) Policy {
	for _, opt := range opts {
		opt(&p)
	}

	return p
}

// Validate reports ErrInvalidPolicy for undeclared enum values or a
// threshold below 1.
func (p Policy) Validate() error {
	switch {
	case !p.LoopOrder.Valid():
		return fmt.Errorf("%w: loop order %d", ErrInvalidPolicy, int(p.LoopOrder))
	case !p.Blocks.Valid():
		return fmt.Errorf("%w: block mode %d", ErrInvalidPolicy, int(p.Blocks))
	case p.Depth != SingleLevel && p.Depth != FullRecursion:
		return fmt.Errorf("%w: depth %d", ErrInvalidPolicy, int(p.Depth))
	case p.Concurrency != Sequential && p.Concurrency != ForkJoin:
		return fmt.Errorf("%w: concurrency %d", ErrInvalidPolicy, int(p.Concurrency))
	case p.Threshold < 1:
		return fmt.Errorf("%w: threshold %d", ErrInvalidPolicy, p.Threshold)
	}

	return nil
}

// LogValue renders the policy as a slog group.
func (p Policy) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("order", p.LoopOrder.String()),
		slog.String("blocks", p.Blocks.String()),
		slog.String("depth", p.Depth.String()),
		slog.Int("threshold", p.Threshold),
		slog.String("concurrency", p.Concurrency.String()),
	)
}

// logger returns p.Logger or a discarding logger.
func (p Policy) logger() *slog.Logger {
	if p.Logger == nil {
		return discard
	}

	return p.Logger
}

// Go 1.21 equivalent of slog.DiscardHandler: writes nowhere, disabled at every level.
var discard = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)}))
