// SPDX-License-Identifier: MIT
// Package: awgwave/wave
//
// wave.go - Wave: one sampled segment and its arithmetic.
//
// Contract:
//   - A Wave owns its arrays; constructors copy their inputs and accessors
//     return copies. Every transform returns a new Wave.
//   - Binary arithmetic uses the longer operand's axis (ties: receiver),
//     combines over the overlapping prefix and passes the longer operand's
//     tail through unchanged. Rules are OR-ed; the name is the receiver's.
//   - Neg reverses the samples in time. It does NOT flip the sign; use
//     Scale(-1) for that.

package wave

import (
	"fmt"
	"math"

	"github.com/katalvlaran/awgwave/axis"
	"github.com/katalvlaran/awgwave/shape"
	"gonum.org/v1/gonum/floats"
)

// Wave is an immutable sampled segment with a name and an append rule.
type Wave struct {
	x, y []float64
	name string
	rule AppendRule
	prec axis.Precision
}

// New builds a Wave from explicit content. x and y are copied.
func New(x, y []float64, name string, rule AppendRule, opts ...Option) (*Wave, error) {
	if len(x) != len(y) {
		return nil, waveErrorf("New", ErrLengthMismatch, "len(x)=%d len(y)=%d", len(x), len(y))
	}
	cfg := newConfig(opts...)

	return &Wave{
		x:    append([]float64{}, x...),
		y:    append([]float64{}, y...),
		name: name,
		rule: rule,
		prec: cfg.prec,
	}, nil
}

// FromShape generates a Wave from a shape descriptor.
func FromShape(cat *shape.Catalog, d shape.Descriptor, opts ...Option) (*Wave, error) {
	s, err := cat.Generate(d)
	if err != nil {
		return nil, fmt.Errorf("FromShape: %w", err)
	}
	cfg := newConfig(opts...)

	// Generate hands over fresh arrays; no copy needed.
	return &Wave{
		x:    s.X,
		y:    s.Y,
		name: s.Name,
		rule: AppendRule{Head: s.Head, Tail: s.Tail},
		prec: cfg.prec,
	}, nil
}

// zeros returns an all-zero wave of n samples spaced dx.
func zeros(n int, dx float64, name string, rule AppendRule, prec axis.Precision) *Wave {
	return &Wave{
		x:    prec.Timeline(n, dx),
		y:    make([]float64, max(n, 0)),
		name: name,
		rule: rule,
		prec: prec,
	}
}

// X returns a copy of the time axis.
func (w *Wave) X() []float64 { return append([]float64{}, w.x...) }

// Y returns a copy of the samples.
func (w *Wave) Y() []float64 { return append([]float64{}, w.y...) }

// Name returns the wave's name.
func (w *Wave) Name() string { return w.name }

// Rule returns the wave's append rule.
func (w *Wave) Rule() AppendRule { return w.rule }

// Precision returns the rounding policy the wave was built with.
func (w *Wave) Precision() axis.Precision { return w.prec }

// Len returns the sample count.
func (w *Wave) Len() int { return len(w.x) }

// Dx returns the rounded sample period, 0 for fewer than two samples.
func (w *Wave) Dx() float64 { return w.prec.Step(w.x) }

// SampleRate returns 1/Dx rounded, 0 when Dx is 0.
func (w *Wave) SampleRate() float64 { return w.prec.Rate(w.Dx()) }

// Span returns the duration x[last]-x[0]+dx.
func (w *Wave) Span() float64 { return w.prec.Span(w.x) }

// WithName returns a copy of w carrying name.
func (w *Wave) WithName(name string) *Wave {
	c := w.clone()
	c.name = name

	return c
}

// WithRule returns a copy of w carrying rule.
func (w *Wave) WithRule(rule AppendRule) *Wave {
	c := w.clone()
	c.rule = rule

	return c
}

// String summarizes the wave.
func (w *Wave) String() string {
	return fmt.Sprintf("name: %s\nlen: %d\ndx: %g\nappendRule: %s", w.name, w.Len(), w.Dx(), w.rule)
}

func (w *Wave) clone() *Wave {
	return &Wave{
		x:    append([]float64{}, w.x...),
		y:    append([]float64{}, w.y...),
		name: w.name,
		rule: w.rule,
		prec: w.prec,
	}
}

func (w *Wave) segments() ([]*Wave, error) {
	if w == nil {
		return nil, ErrNilSegment
	}

	return []*Wave{w}, nil
}

// ToWaveform wraps w as a single-segment Waveform named after w.
func (w *Wave) ToWaveform() *Waveform {
	wf, _ := newWaveform([]*Wave{w}, w.name, w.prec)

	return wf
}

// -----------------------------------------------------------------------------
// Arithmetic
// -----------------------------------------------------------------------------

// combine applies kernel to (w, o) over the overlapping prefix.
// kernel(dst, a, b) writes a op b into dst, all of equal length.
func (w *Wave) combine(o *Wave, kernel func(dst, a, b []float64) []float64) *Wave {
	longer := w
	if o.Len() > w.Len() {
		longer = o
	}
	n := min(w.Len(), o.Len())

	y := append([]float64{}, longer.y...)
	kernel(y[:n], w.y[:n], o.y[:n])

	return &Wave{
		x:    append([]float64{}, longer.x...),
		y:    y,
		name: w.name,
		rule: w.rule.Or(o.rule),
		prec: w.prec,
	}
}

// Add returns w + o.
func (w *Wave) Add(o *Wave) *Wave { return w.combine(o, floats.AddTo) }

// Sub returns w - o over the overlap; the longer tail passes unchanged.
func (w *Wave) Sub(o *Wave) *Wave { return w.combine(o, floats.SubTo) }

// Mul returns the element-wise product w * o.
func (w *Wave) Mul(o *Wave) *Wave { return w.combine(o, floats.MulTo) }

// mapY returns a copy of w with f applied to the samples in place.
func (w *Wave) mapY(f func(y []float64)) *Wave {
	c := w.clone()
	f(c.y)

	return c
}

// AddScalar returns w with c added to every sample.
func (w *Wave) AddScalar(c float64) *Wave {
	return w.mapY(func(y []float64) { floats.AddConst(c, y) })
}

// SubScalar returns w with c subtracted from every sample.
func (w *Wave) SubScalar(c float64) *Wave {
	return w.mapY(func(y []float64) { floats.AddConst(-c, y) })
}

// Scale returns w with every sample multiplied by c.
func (w *Wave) Scale(c float64) *Wave {
	return w.mapY(func(y []float64) { floats.Scale(c, y) })
}

// Div returns w with every sample divided by d. Division by a wave is not
// defined.
func (w *Wave) Div(d float64) (*Wave, error) {
	if d == 0 || math.IsNaN(d) || math.IsInf(d, 0) {
		return nil, waveErrorf("Div", ErrInvalidDivisor, "%g", d)
	}

	return w.mapY(func(y []float64) {
		for i := range y {
			y[i] /= d
		}
	}), nil
}

// Neg reverses the samples in time, keeping the axis. Same as Reverse.
func (w *Wave) Neg() *Wave { return w.Reverse() }

// Reverse returns w with its samples in reverse order.
func (w *Wave) Reverse() *Wave {
	return w.mapY(func(y []float64) {
		for i, j := 0, len(y)-1; i < j; i, j = i+1, j-1 {
			y[i], y[j] = y[j], y[i]
		}
	})
}

// Abs returns the element-wise absolute value.
func (w *Wave) Abs() *Wave {
	return w.mapY(func(y []float64) {
		for i, v := range y {
			y[i] = math.Abs(v)
		}
	})
}
