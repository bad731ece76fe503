// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"math"
	"testing"
	"time"

	"github.com/ik5/lpcsynth/internal/audiotest"
)

func TestReadAll_Stereo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mode MixMode
		want float64
	}{
		{MixAverage, 0.1},
		{MixFirst, 0.5},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			t.Parallel()

			src := audiotest.NewMockSource(8000, 2, 10000, func(_ int, channel int) float64 {
				if channel == 0 {
					return 0.5
				}
				return -0.3
			})

			buf, err := ReadAll(src, tt.mode)
			if err != nil {
				t.Fatalf("ReadAll() error = %v", err)
			}
			if buf.SampleRate != 8000 {
				t.Errorf("SampleRate = %d, want 8000", buf.SampleRate)
			}
			if len(buf.Samples) != 10000 {
				t.Fatalf("len(Samples) = %d, want 10000", len(buf.Samples))
			}
			for i, s := range buf.Samples {
				if math.Abs(s-tt.want) > 1e-12 {
					t.Fatalf("Samples[%d] = %v, want %v", i, s, tt.want)
				}
			}
		})
	}
}

func TestReadAll_Errors(t *testing.T) {
	t.Parallel()

	if _, err := ReadAll(audiotest.NewSilentSource(0, 1, 10), MixAverage); !errors.Is(err, ErrInvalidSampleRate) {
		t.Errorf("zero rate error = %v, want ErrInvalidSampleRate", err)
	}

	if _, err := ReadAll(audiotest.NewSilentSource(8000, 0, 10), MixAverage); !errors.Is(err, ErrNoChannels) {
		t.Errorf("zero channels error = %v, want ErrNoChannels", err)
	}

	failing := audiotest.NewSilentSource(8000, 1, 10000)
	failing.FailAfter = 5000
	if _, err := ReadAll(failing, MixAverage); !errors.Is(err, audiotest.ErrMockRead) {
		t.Errorf("read failure error = %v, want ErrMockRead", err)
	}
}

type stuckSource struct{}

func (stuckSource) SampleRate() int                    { return 8000 }
func (stuckSource) Channels() int                      { return 1 }
func (stuckSource) BufSize() int                       { return 0 }
func (stuckSource) Close() error                       { return nil }
func (stuckSource) ReadSamples([]float64) (int, error) { return 0, nil }

func TestReadAll_NoProgress(t *testing.T) {
	t.Parallel()

	if _, err := ReadAll(stuckSource{}, MixAverage); !errors.Is(err, io.ErrNoProgress) {
		t.Errorf("ReadAll() error = %v, want io.ErrNoProgress", err)
	}
}

func TestBuffer_SourceRoundTrip(t *testing.T) {
	t.Parallel()

	in := &Buffer{Samples: audiotest.NoiseSamples(2, 9000, 1), SampleRate: 22050}

	out, err := ReadAll(in.Source(), MixAverage)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if out.SampleRate != in.SampleRate || len(out.Samples) != len(in.Samples) {
		t.Fatalf("got %d samples at %d Hz", len(out.Samples), out.SampleRate)
	}
	for i := range in.Samples {
		if out.Samples[i] != in.Samples[i] {
			t.Fatalf("sample %d differs", i)
		}
	}
}

func TestBuffer_Duration(t *testing.T) {
	t.Parallel()

	b := &Buffer{Samples: make([]float64, 22050), SampleRate: 44100}
	if got := b.Duration(); got != 500*time.Millisecond {
		t.Errorf("Duration() = %v, want 500ms", got)
	}

	if got := (&Buffer{Samples: make([]float64, 10)}).Duration(); got != 0 {
		t.Errorf("Duration() without rate = %v, want 0", got)
	}
}

func TestResample(t *testing.T) {
	t.Parallel()

	in := &Buffer{Samples: audiotest.SineSamples(48000, 48000, 440, 0.8), SampleRate: 48000}

	out, err := Resample(in, 8000)
	if err != nil {
		t.Fatalf("Resample() error = %v", err)
	}
	if out.SampleRate != 8000 {
		t.Errorf("SampleRate = %d, want 8000", out.SampleRate)
	}
	if len(out.Samples) != 8000 {
		t.Errorf("len(Samples) = %d, want 8000", len(out.Samples))
	}
}

func TestResample_SameRate(t *testing.T) {
	t.Parallel()

	in := &Buffer{Samples: []float64{1, 2, 3}, SampleRate: 44100}

	out, err := Resample(in, 44100)
	if err != nil {
		t.Fatalf("Resample() error = %v", err)
	}
	if &out.Samples[0] != &in.Samples[0] {
		t.Error("Resample() copied a buffer already at the target rate")
	}
}

func TestResample_InvalidRate(t *testing.T) {
	t.Parallel()

	in := &Buffer{Samples: []float64{1}, SampleRate: 44100}
	if _, err := Resample(in, 0); !errors.Is(err, ErrInvalidSampleRate) {
		t.Errorf("Resample(0) error = %v, want ErrInvalidSampleRate", err)
	}
}
