// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric kernels
// (Gram-Schmidt, QR decomposition, QR iteration). This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - The tolerance default depends on the float width: float32 arithmetic cannot
//     reach the float64 default, so an unset epsilon resolves per width.
package matrix

import (
	"math"

	"golang.org/x/exp/constraints"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxIterations caps the QR iteration.
	DefaultMaxIterations = 100

	// DefaultEpsilon64 is the absolute tolerance for float64 matrices: below it a
	// lower-triangular entry counts as zero and a Gram-Schmidt residual (relative to
	// its input norm) counts as degenerate.
	DefaultEpsilon64 = 1e-9

	// DefaultEpsilon32 is the float32 counterpart of DefaultEpsilon64.
	DefaultEpsilon32 = 1e-4

	// DefaultShift disables the Wilkinson shift: plain A_{k+1} = R_k Q_k.
	DefaultShift = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicMaxIterInvalid = "matrix: WithMaxIterations: n must be non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (last one wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; read them through the accessor methods.
type Options struct {
	eps     float64 // ≥ 0; meaningful only when epsSet
	epsSet  bool    // false ⇒ width-dependent default
	maxIter int     // ≥ 0; DefaultMaxIterations
	shift   bool    // DefaultShift
}

// WithEpsilon sets the numeric tolerance used by the convergence test of the QR
// iteration and by the degenerate-residual test of Gram-Schmidt.
// Panics if eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) {
		o.eps = eps
		o.epsSet = true
	}
}

// WithMaxIterations sets the QR iteration budget. Zero only checks whether the
// input is already upper-triangular. Panics if n is negative.
func WithMaxIterations(n int) Option {
	if n < 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithShift toggles the Wilkinson shift with deflation.
// Shifting lets real matrices with complex eigenvalue pairs converge.
func WithShift(enabled bool) Option {
	return func(o *Options) { o.shift = enabled }
}

// NewOptions resolves opts over the defaults. Exposed for callers that want to
// inspect the effective configuration.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

// Epsilon reports the configured tolerance and whether it was set explicitly.
func (o Options) Epsilon() (eps float64, explicit bool) { return o.eps, o.epsSet }

// MaxIterations reports the QR iteration budget.
func (o Options) MaxIterations() int { return o.maxIter }

// Shift reports whether the Wilkinson shift is enabled.
func (o Options) Shift() bool { return o.shift }

// gatherOptions applies opts in order over defaultOptions.
// nil entries are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

func defaultOptions() Options {
	return Options{
		maxIter: DefaultMaxIterations,
		shift:   DefaultShift,
	}
}

// epsilonFor resolves the tolerance for float width F.
func epsilonFor[F constraints.Float](o Options) float64 {
	if o.epsSet {
		return o.eps
	}
	if isSinglePrecision[F]() {
		return DefaultEpsilon32
	}

	return DefaultEpsilon64
}

// isSinglePrecision reports whether F cannot resolve 1 + 1e-12, i.e. F is float32-backed.
func isSinglePrecision[F constraints.Float]() bool {
	var one F = 1
	tiny := F(1e-12)

	return one+tiny == one
}
