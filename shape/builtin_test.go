// SPDX-License-Identifier: MIT

package shape_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/awgwave/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gen samples a built-in at 1 sample/s so that x[i] == i.
func gen(t *testing.T, fn string, span float64, args ...float64) []float64 {
	t.Helper()
	s, err := shape.NewCatalog().Generate(shape.Descriptor{
		Function: fn, Values: args, Span: span, SampleRate: 1,
	})
	require.NoError(t, err)

	return s.Y
}

func assertSamples(t *testing.T, want, got []float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-12, "sample %d", i)
	}
}

// TestBuiltins_Values pins each shape on a unit-rate integer timeline.
func TestBuiltins_Values(t *testing.T) {
	e1, e2 := math.Exp(-1), math.Exp(-2)
	g1 := math.Exp(-0.5)

	cases := []struct {
		name string
		fn   string
		span float64
		args []float64
		want []float64
	}{
		{"Const", "const", 2, []float64{0.3}, []float64{0.3, 0.3, 0.3}},
		{"Gaussian", "gaussian", 4, []float64{2, 1}, []float64{math.Exp(-2), g1, 1, g1, math.Exp(-2)}},
		{"ExpRising", "exp_rising", 4, []float64{2, 1}, []float64{e2, e1, 1, 0, 0}},
		{"ExpFalling", "exp_falling", 4, []float64{2, 1}, []float64{0, 0, 1, e1, e2}},
		{"GaussianSquare", "gaussian_square", 9, []float64{2, 3, 1},
			[]float64{math.Exp(-2), g1, 1, 1, 1, 1, 1, g1, math.Exp(-2), math.Exp(-4.5)}},
		{"ExpSquare", "exp_square", 7, []float64{1, 2, 1}, []float64{e1, 1, 1, 1, 1, e1, e2, math.Exp(-3)}},
		{"Square", "square", 6, []float64{2, 3}, []float64{0, 0, 1, 1, 1, 1, 0}},
		{"Sine", "sine", 4, []float64{4, 0}, []float64{0, 1, 0, -1, 0}},
		{"Sine2", "sine2", 4, []float64{0.25, 0}, []float64{0, 1, 0, -1, 0}},
		{"Cosine", "cosine", 4, []float64{4, 0}, []float64{1, 0, -1, 0, 1}},
		{"Cosine2", "cosine2", 4, []float64{0.25, math.Pi}, []float64{-1, 0, 1, 0, -1}},
		{"PulseTrain", "pulse_train", 7, []float64{4, 0.5}, []float64{1, 1, 0, 0, 1, 1, 0, 0}},
		{"Triangle", "triangle", 4, []float64{4}, []float64{0, 0.5, 1, 0.5, 0}},
		{"ChirpFlat", "chirp", 3, []float64{0, 0, math.Pi / 2}, []float64{1, 1, 1, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assertSamples(t, tc.want, gen(t, tc.fn, tc.span, tc.args...))
		})
	}
}

// TestBuiltins_GaussianSquareFallingPeak starts the falling edge at the
// first sample past the flat top.
func TestBuiltins_GaussianSquareFallingPeak(t *testing.T) {
	y := gen(t, "gaussian_square", 8, 2, 2.5, 1)
	// flat top covers (2, 4.5]; first sample after it is t=5.
	assert.InDelta(t, 1.0, y[4], 1e-12)
	assert.InDelta(t, 1.0, y[5], 1e-12)
	assert.InDelta(t, math.Exp(-0.5), y[6], 1e-12)
}

// TestBuiltins_ChirpConstantMatchesSine reduces to a sine when f0 == f1.
func TestBuiltins_ChirpConstantMatchesSine(t *testing.T) {
	assertSamples(t, gen(t, "sine2", 16, 0.1, 0.3), gen(t, "chirp", 16, 0.1, 0.1, 0.3))
}

// TestBuiltins_ChirpSweep reaches f1 at the end of the timeline.
func TestBuiltins_ChirpSweep(t *testing.T) {
	y := gen(t, "chirp", 10, 0, 0.1, 0)
	// phase(t) = 2pi * 0.1 t^2 / 20
	for i, v := range y {
		tt := float64(i)
		assert.InDelta(t, math.Sin(2*math.Pi*0.1*tt*tt/20), v, 1e-12)
	}
}

// TestBuiltins_DragAntisymmetric is zero at the peak and odd around it.
func TestBuiltins_DragAntisymmetric(t *testing.T) {
	y := gen(t, "drag", 6, 3, 1, 0.5)
	assert.InDelta(t, 0, y[3], 1e-15)
	for d := 1; d <= 3; d++ {
		assert.InDelta(t, -y[3-d], y[3+d], 1e-15)
	}
	assert.InDelta(t, -0.5*math.Exp(-0.5), y[4], 1e-12)
}

// TestBuiltins_Registered lists every built-in.
func TestBuiltins_Registered(t *testing.T) {
	assert.Equal(t, []string{
		"chirp", "const", "cosine", "cosine2", "drag", "exp_falling", "exp_rising",
		"exp_square", "gaussian", "gaussian_square", "pulse_train", "sine", "sine2",
		"square", "triangle",
	}, shape.NewCatalog().Names())
}
