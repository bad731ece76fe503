// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
	"time"
)

const defaultBufSize = 4096

// Buffer is a whole mono signal held in memory.
type Buffer struct {
	Samples    []float64
	SampleRate int
}

// Duration of the buffer at its sample rate.
func (b *Buffer) Duration() time.Duration {
	if b.SampleRate <= 0 {
		return 0
	}
	return time.Duration(len(b.Samples)) * time.Second / time.Duration(b.SampleRate)
}

// Source plays the buffer back as a mono Source.
func (b *Buffer) Source() Source {
	return &bufferSource{buf: b}
}

type bufferSource struct {
	buf *Buffer
	pos int
}

func (s *bufferSource) SampleRate() int { return s.buf.SampleRate }
func (s *bufferSource) Channels() int   { return 1 }
func (s *bufferSource) BufSize() int    { return defaultBufSize }
func (s *bufferSource) Close() error    { return nil }

func (s *bufferSource) ReadSamples(dst []float64) (int, error) {
	n := copy(dst, s.buf.Samples[s.pos:])
	s.pos += n

	if s.pos >= len(s.buf.Samples) {
		return n, io.EOF
	}
	return n, nil
}

// ReadAll drains src into a mono Buffer, folding channels with mode.
// It does not close src.
func ReadAll(src Source, mode MixMode) (*Buffer, error) {
	if src.SampleRate() <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSampleRate, src.SampleRate())
	}
	if src.Channels() < 1 {
		return nil, ErrNoChannels
	}

	mono := NewMonoMixer(src, mode)

	size := src.BufSize()
	if size <= 0 {
		size = defaultBufSize
	}
	chunk := make([]float64, size)

	out := &Buffer{SampleRate: src.SampleRate()}
	for {
		n, err := mono.ReadSamples(chunk)
		out.Samples = append(out.Samples, chunk[:n]...)

		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}
		if n == 0 && len(chunk) > 0 {
			// A source that makes no progress without signalling EOF would
			// spin forever.
			return nil, fmt.Errorf("reading samples: %w", io.ErrNoProgress)
		}
	}
}

// Resample converts buf to rate with the streaming Resampler.
// A buffer already at rate is returned as is.
func Resample(buf *Buffer, rate int) (*Buffer, error) {
	if rate <= 0 || buf.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d -> %d", ErrInvalidSampleRate, buf.SampleRate, rate)
	}
	if buf.SampleRate == rate || len(buf.Samples) == 0 {
		return &Buffer{Samples: buf.Samples, SampleRate: rate}, nil
	}

	r := NewResampler(buf.Source(), rate)
	expected := int(int64(len(buf.Samples))*int64(rate)/int64(buf.SampleRate)) + 1

	out := &Buffer{
		Samples:    make([]float64, 0, expected),
		SampleRate: rate,
	}
	chunk := make([]float64, defaultBufSize)
	for {
		n, err := r.ReadSamples(chunk)
		out.Samples = append(out.Samples, chunk[:n]...)

		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("resampling: %w", err)
		}
	}
}
