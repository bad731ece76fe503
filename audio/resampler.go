// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/lpcsynth/utils"
)

// Resampler streams from src to target sample rate using cubic interpolation.
// Works on interleaved samples; preserves channel count.
// Includes a one-pole lowpass on the input when downsampling.
type Resampler struct {
	src      Source
	dstRate  int
	ratio    float64 // source samples per output sample
	channels int

	// frames[0] = t-1, frames[1] = t0, frames[2] = t+1, frames[3] = t+2
	frames   [4][]float64
	hasFrame [4]bool
	primed   bool

	// Position between frames[1] and frames[2], in source samples.
	pos float64

	srcBuf []float64
	eof    bool

	filterState []float64
	useFilter   bool
	filterAlpha float64
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	ratio := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:         src,
		dstRate:     dstRate,
		ratio:       ratio,
		channels:    channels,
		srcBuf:      make([]float64, max(channels, 1)),
		useFilter:   ratio > 1.0,
		filterAlpha: 0.5,
		filterState: make([]float64, channels),
	}

	for i := range r.frames {
		r.frames[i] = make([]float64, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// readFrame reads one source frame into dst, lowpassed when downsampling.
func (r *Resampler) readFrame(dst []float64) (bool, error) {
	n, err := r.src.ReadSamples(r.srcBuf[:r.channels])
	ok := n == r.channels
	if ok {
		copy(dst, r.srcBuf)

		if r.useFilter {
			for c := range r.channels {
				// y[n] = alpha * x[n] + (1-alpha) * y[n-1]
				dst[c] = r.filterAlpha*dst[c] + (1-r.filterAlpha)*r.filterState[c]
				r.filterState[c] = dst[c]
			}
		}
	}

	if errors.Is(err, io.EOF) {
		r.eof = true
		return ok, nil
	}
	if err != nil {
		return ok, fmt.Errorf("%w", err)
	}

	return ok, nil
}

// prime fills the four frame slots; frames[0] duplicates the first frame.
func (r *Resampler) prime() error {
	r.primed = true

	for i := 1; i < 4 && !r.eof; i++ {
		ok, err := r.readFrame(r.frames[i])
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		if i == 1 && r.useFilter {
			// Start the filter at the first sample to avoid a warm-up ramp.
			copy(r.filterState, r.srcBuf)
			copy(r.frames[1], r.srcBuf)
		}
		r.hasFrame[i] = true
	}

	if !r.hasFrame[1] {
		return io.EOF
	}

	copy(r.frames[0], r.frames[1])
	r.hasFrame[0] = true

	return nil
}

// advance shifts the frame window by one source frame.
func (r *Resampler) advance() error {
	copy(r.frames[0], r.frames[1])
	copy(r.frames[1], r.frames[2])
	copy(r.frames[2], r.frames[3])
	r.hasFrame[0] = r.hasFrame[1]
	r.hasFrame[1] = r.hasFrame[2]
	r.hasFrame[2] = r.hasFrame[3]
	r.hasFrame[3] = false

	if r.eof {
		return nil
	}

	ok, err := r.readFrame(r.frames[3])
	r.hasFrame[3] = ok

	return err
}

// ReadSamples produces dst samples at the target rate.
// dst length must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float64) (int, error) {
	if r.channels < 1 {
		return 0, ErrNoChannels
	}
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	framesNeeded := len(dst) / r.channels

	for written < framesNeeded {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}

		// The last source frame is emitted at pos 0 and nothing follows it.
		if !r.hasFrame[1] || (!r.hasFrame[2] && r.pos > 0) {
			return written * r.channels, io.EOF
		}

		for c := range r.channels {
			y1 := r.frames[1][c]
			y0, y2, y3 := y1, y1, y1
			if r.hasFrame[0] {
				y0 = r.frames[0][c]
			}
			if r.hasFrame[2] {
				y2 = r.frames[2][c]
				y3 = y2
			}
			if r.hasFrame[3] {
				y3 = r.frames[3][c]
			}

			dst[written*r.channels+c] = utils.CubicInterpolate(y0, y1, y2, y3, r.pos)
		}

		written++
		r.pos += r.ratio
	}

	return written * r.channels, nil
}
