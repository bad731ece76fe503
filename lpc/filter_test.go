// SPDX-License-Identifier: EPL-2.0

package lpc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSynthesize_ImpulseResponse(t *testing.T) {
	t.Parallel()

	exc := []float64{1, 0, 0, 0, 0}
	out := make([]float64, len(exc))

	clamped := Synthesize(out, exc, []float64{1, 0.5}, 1)

	assert.Zero(t, clamped)
	assert.InDeltaSlice(t, []float64{1, 0.5, 0.25, 0.125, 0.0625}, out, 1e-15)
}

func TestSynthesize_GainOnly(t *testing.T) {
	t.Parallel()

	exc := []float64{0.1, -0.2, 0.3}
	out := make([]float64, len(exc))

	Synthesize(out, exc, []float64{2}, 10)
	assert.InDeltaSlice(t, []float64{0.2, -0.4, 0.6}, out, 1e-15)
}

func TestSynthesize_ZeroHistory(t *testing.T) {
	t.Parallel()

	// Taps beyond p must not reach before the frame start.
	exc := []float64{1, 1, 1}
	out := make([]float64, len(exc))

	Synthesize(out, exc, []float64{1, 0, 0, 1}, 100)
	assert.Equal(t, []float64{1, 1, 1}, out)
}

func TestSynthesize_UnstableIsBounded(t *testing.T) {
	t.Parallel()

	exc := make([]float64, 300)
	exc[0] = 1
	out := make([]float64, len(exc))

	clamped := Synthesize(out, exc, []float64{1, 2, 0.5}, 1)

	assert.Positive(t, clamped)
	for p, v := range out {
		assert.LessOrEqual(t, math.Abs(v), 1.0, "p=%d", p)
	}
}

func TestSynthesize_NaNBecomesZero(t *testing.T) {
	t.Parallel()

	exc := []float64{math.NaN(), 0.5}
	out := make([]float64, len(exc))

	clamped := Synthesize(out, exc, []float64{1, 1}, 1)

	assert.Equal(t, 1, clamped)
	assert.Equal(t, []float64{0, 0.5}, out)
}

func TestSynthesize_InfiniteLimit(t *testing.T) {
	t.Parallel()

	exc := []float64{1, 0, 0}
	out := make([]float64, len(exc))

	clamped := Synthesize(out, exc, []float64{1, 10}, math.Inf(1))

	assert.Zero(t, clamped)
	assert.Equal(t, []float64{1, 10, 100}, out)
}

func BenchmarkSynthesize(b *testing.B) {
	exc := make([]float64, DefaultWindowSize)
	for i := range exc {
		exc[i] = math.Sin(float64(i))
	}
	coeff := []float64{1, 0.4, -0.2, 0.1, 0, 0, 0, 0, 0, 0, 0.01}
	out := make([]float64, len(exc))

	b.ReportAllocs()
	for b.Loop() {
		Synthesize(out, exc, coeff, DefaultOutputLimit)
	}
}
