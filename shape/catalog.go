// SPDX-License-Identifier: MIT
// Package: awgwave/shape
//
// catalog.go - the shape registry and sampler.
//
// Contract:
//   - Generate(d) returns x starting at 0, spaced 1/rate, with
//     round(span*rate)+1 samples, and y = fn(x, args).
//   - Arguments are resolved by name (Args) or by position (Values) against
//     the ordered argument list declared at registration.
//   - A Catalog is safe for concurrent use; Register takes a write lock.

package shape

import (
	"math"
	"sort"
	"sync"

	"github.com/katalvlaran/awgwave/axis"
)

// Method tokens used as error context.
const (
	methodGenerate = "Generate"
	methodRegister = "Register"
	methodArgNames = "ArgNames"
	methodTimeline = "Timeline"
)

// entry is one registered generator.
type entry struct {
	argNames []string
	fn       Func
}

// Catalog maps shape names to generators and their argument names.
type Catalog struct {
	mu      sync.RWMutex
	entries map[string]entry
	cfg     catalogConfig
}

// NewCatalog returns a catalog holding the built-in shapes (unless
// WithoutBuiltins is given).
func NewCatalog(opts ...Option) *Catalog {
	c := &Catalog{
		entries: make(map[string]entry),
		cfg:     newCatalogConfig(opts...),
	}
	if c.cfg.builtins {
		for _, b := range builtins() {
			c.entries[b.name] = entry{argNames: b.args, fn: b.fn}
		}
	}

	return c
}

// Precision returns the rounding policy applied to generated axes.
func (c *Catalog) Precision() axis.Precision {
	return c.cfg.prec
}

// Register adds a generator under name with the ordered argument names.
// The timeline argument is implicit and must not appear in argNames.
func (c *Catalog) Register(name string, argNames []string, fn Func) error {
	if name == "" || fn == nil {
		return shapeErrorf(methodRegister, ErrBadShapeFunc, "")
	}
	seen := make(map[string]struct{}, len(argNames))
	for _, a := range argNames {
		if _, dup := seen[a]; dup || a == "" {
			return shapeErrorf(methodRegister, ErrBadShapeFunc, "argument %q", a)
		}
		seen[a] = struct{}{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[name]; ok {
		return shapeErrorf(methodRegister, ErrDuplicateShape, "%q", name)
	}
	c.entries[name] = entry{argNames: append([]string(nil), argNames...), fn: fn}

	return nil
}

// ArgNames returns a copy of the ordered argument names of a shape.
func (c *Catalog) ArgNames(name string) ([]string, error) {
	c.mu.RLock()
	e, ok := c.entries[name]
	c.mu.RUnlock()
	if !ok {
		return nil, shapeErrorf(methodArgNames, ErrUnknownShape, "%q", name)
	}

	return append([]string(nil), e.argNames...), nil
}

// Names returns every registered shape name in lexical order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	names := make([]string, 0, len(c.entries))
	for n := range c.entries {
		names = append(names, n)
	}
	c.mu.RUnlock()
	sort.Strings(names)

	return names
}

// Timeline returns the sample times for span seconds at rate samples per
// second: round(span*rate)+1 points from 0 spaced 1/rate.
func (c *Catalog) Timeline(span, rate float64) ([]float64, error) {
	if err := checkTimeline(span, rate); err != nil {
		return nil, shapeErrorf(methodTimeline, err, "span=%g rate=%g", span, rate)
	}
	n := int(math.Round(span*rate)) + 1

	return c.cfg.prec.Timeline(n, 1/rate), nil
}

// Generate samples the shape described by d. A zero SampleRate selects the
// catalog's default rate.
func (c *Catalog) Generate(d Descriptor) (Sample, error) {
	c.mu.RLock()
	e, ok := c.entries[d.Function]
	c.mu.RUnlock()
	if !ok {
		return Sample{}, shapeErrorf(methodGenerate, ErrUnknownShape, "%q", d.Function)
	}

	args, err := resolveArgs(e.argNames, d)
	if err != nil {
		return Sample{}, shapeErrorf(methodGenerate, err, "%s", d.Function)
	}

	rate := d.SampleRate
	if rate == 0 {
		rate = c.cfg.rate
	}
	x, err := c.Timeline(d.Span, rate)
	if err != nil {
		return Sample{}, shapeErrorf(methodGenerate, err, "%s", d.Function)
	}

	y := e.fn(append([]float64(nil), x...), args)
	if len(y) != len(x) {
		return Sample{}, shapeErrorf(methodGenerate, ErrBadOutput,
			"%s returned %d samples, want %d", d.Function, len(y), len(x))
	}
	for i, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Sample{}, shapeErrorf(methodGenerate, ErrBadOutput,
				"%s sample %d is %g", d.Function, i, v)
		}
	}

	head, tail := d.Rule()

	return Sample{X: x, Y: y, Name: d.Name, Head: head, Tail: tail}, nil
}

// resolveArgs orders the descriptor's arguments by the declared names.
func resolveArgs(names []string, d Descriptor) ([]float64, error) {
	if len(d.Args) > 0 && len(d.Values) > 0 {
		return nil, ErrArgCount
	}
	if d.Values != nil {
		if len(d.Values) != len(names) {
			return nil, ErrArgCount
		}

		return append([]float64(nil), d.Values...), nil
	}

	out := make([]float64, len(names))
	for i, n := range names {
		v, ok := d.Args[n]
		if !ok {
			return nil, shapeErrorf(n, ErrMissingArg, "")
		}
		out[i] = v
	}
	if len(d.Args) > len(names) {
		return nil, ErrArgCount
	}

	return out, nil
}

// checkTimeline validates span and rate.
func checkTimeline(span, rate float64) error {
	if math.IsNaN(span) || math.IsInf(span, 0) || span < 0 {
		return ErrBadTimeline
	}
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate <= 0 {
		return ErrBadTimeline
	}

	return nil
}
