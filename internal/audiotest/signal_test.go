// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"io"
	"math"
	"slices"
	"testing"
)

func TestNoiseSamples_Deterministic(t *testing.T) {
	t.Parallel()

	a := NoiseSamples(3, 512, 0.5)
	b := NoiseSamples(3, 512, 0.5)
	c := NoiseSamples(4, 512, 0.5)

	if !slices.Equal(a, b) {
		t.Error("same seed produced different samples")
	}
	if slices.Equal(a, c) {
		t.Error("different seeds produced identical samples")
	}
	for i, v := range a {
		if math.Abs(v) > 0.5 {
			t.Fatalf("sample %d = %v outside [-0.5, 0.5]", i, v)
		}
	}
}

func TestSineSamples(t *testing.T) {
	t.Parallel()

	s := SineSamples(8000, 8, 2000, 2)
	want := []float64{0, 2, 0, -2, 0, 2, 0, -2}

	for i := range want {
		if math.Abs(s[i]-want[i]) > 1e-12 {
			t.Errorf("sample %d = %v, want %v", i, s[i], want[i])
		}
	}
}

func TestMockSource_ReadsInterleaved(t *testing.T) {
	t.Parallel()

	src := NewSliceSource(8000, 2, []float64{1, 2, 3, 4, 5, 6})
	buf := make([]float64, 4)

	n, err := src.ReadSamples(buf)
	if n != 4 || err != nil {
		t.Fatalf("first read = (%d, %v), want (4, nil)", n, err)
	}
	if !slices.Equal(buf, []float64{1, 2, 3, 4}) {
		t.Errorf("first read = %v", buf)
	}

	n, err = src.ReadSamples(buf)
	if n != 2 || err != io.EOF {
		t.Fatalf("second read = (%d, %v), want (2, EOF)", n, err)
	}
}

func TestMockSource_FailAfter(t *testing.T) {
	t.Parallel()

	src := NewConstantSource(8000, 1, 100, 0.1)
	src.FailAfter = 10

	buf := make([]float64, 64)
	n, err := src.ReadSamples(buf)
	if n != 10 || err != nil {
		t.Fatalf("first read = (%d, %v), want (10, nil)", n, err)
	}

	if _, err := src.ReadSamples(buf); !errors.Is(err, ErrMockRead) {
		t.Errorf("second read error = %v, want ErrMockRead", err)
	}
}
