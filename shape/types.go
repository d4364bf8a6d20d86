// SPDX-License-Identifier: MIT
// Package: awgwave/shape
//
// types.go - generator signature, declarative descriptor and result.

package shape

// Func computes one sample per element of x. args holds the generator's
// declared arguments in the order given at registration. A Func must return
// exactly len(x) finite values and must not retain or modify x.
type Func func(x []float64, args []float64) []float64

// Descriptor is the declarative description of a sampled shape. It is the
// unit stored in TOML descriptor files.
//
// Args (keyword) and Values (positional) are mutually exclusive. Head and
// Tail are the append rule; nil means hard (true).
type Descriptor struct {
	Function   string             `toml:"function" msgpack:"function"`
	Span       float64            `toml:"span" msgpack:"span"`
	SampleRate float64            `toml:"sample_rate" msgpack:"sample_rate"`
	Args       map[string]float64 `toml:"args" msgpack:"args,omitempty"`
	Values     []float64          `toml:"values" msgpack:"values,omitempty"`
	Name       string             `toml:"name" msgpack:"name"`
	Head       *bool              `toml:"head" msgpack:"head,omitempty"`
	Tail       *bool              `toml:"tail" msgpack:"tail,omitempty"`
}

// Rule resolves the descriptor's append rule, defaulting both ends to hard.
func (d Descriptor) Rule() (head, tail bool) {
	head, tail = true, true
	if d.Head != nil {
		head = *d.Head
	}
	if d.Tail != nil {
		tail = *d.Tail
	}

	return head, tail
}

// Sample is a generated shape: a time axis starting at 0, the values, the
// descriptor's name and its resolved append rule.
type Sample struct {
	X    []float64
	Y    []float64
	Name string
	Head bool
	Tail bool
}

// SetFunc builds a keyword Descriptor. rule, when given, is (head, tail);
// missing entries default to hard.
//
//	d := shape.SetFunc("gaussian", map[string]float64{"peak_x": 50e-9, "sigma": 10e-9},
//		100e-9, 1e9, "g", false, false)
func SetFunc(function string, args map[string]float64, span, rate float64, name string, rule ...bool) Descriptor {
	d := Descriptor{
		Function:   function,
		Span:       span,
		SampleRate: rate,
		Args:       args,
		Name:       name,
	}
	if len(rule) > 0 {
		h := rule[0]
		d.Head = &h
	}
	if len(rule) > 1 {
		t := rule[1]
		d.Tail = &t
	}

	return d
}
