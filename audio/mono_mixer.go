// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"strings"
)

// MixMode selects how MonoMixer folds channels into one.
type MixMode string

const (
	// MixAverage averages all channels of a frame.
	MixAverage MixMode = "average"
	// MixFirst keeps channel 0 and drops the rest.
	MixFirst MixMode = "first"
)

// ParseMixMode accepts the mode names case-insensitively; an empty string
// selects MixAverage.
func ParseMixMode(s string) (MixMode, error) {
	switch m := MixMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return MixAverage, nil
	case MixAverage, MixFirst:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMixMode, s)
}

type MonoMixer struct {
	src  Source
	mode MixMode
	tmp  []float64
}

// NewMonoMixer wraps src. An empty or unknown mode falls back to MixAverage;
// validate user input with ParseMixMode first.
func NewMonoMixer(src Source, mode MixMode) *MonoMixer {
	if mode != MixFirst {
		mode = MixAverage
	}

	return &MonoMixer{
		src:  src,
		mode: mode,
		tmp:  make([]float64, 4096),
	}
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) BufSize() int    { return m.src.BufSize() }
func (m *MonoMixer) Mode() MixMode   { return m.mode }

func (m *MonoMixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (m *MonoMixer) ReadSamples(dst []float64) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := m.src.Channels()
	if channels < 1 {
		return 0, ErrNoChannels
	}
	if channels == 1 {
		return m.src.ReadSamples(dst)
	}

	samplesNeeded := len(dst) * channels

	// Grow tmp buffer if needed (but don't shrink to avoid thrashing)
	if cap(m.tmp) < samplesNeeded {
		m.tmp = make([]float64, max(samplesNeeded, 8192))
	}
	m.tmp = m.tmp[:samplesNeeded]

	n, err := m.src.ReadSamples(m.tmp)
	if n == 0 {
		return 0, err
	}
	frames := n / channels

	if m.mode == MixFirst {
		for f := range frames {
			dst[f] = m.tmp[f*channels]
		}
		return frames, err
	}

	switch channels {
	case 2:
		for f := range frames {
			idx := f << 1
			dst[f] = (m.tmp[idx] + m.tmp[idx+1]) * 0.5
		}
	case 4:
		for f := range frames {
			idx := f << 2
			sum := m.tmp[idx] + m.tmp[idx+1] + m.tmp[idx+2] + m.tmp[idx+3]
			dst[f] = sum * 0.25
		}
	default:
		invChannels := 1.0 / float64(channels)
		for f := range frames {
			sum := 0.0
			base := f * channels
			for c := range channels {
				sum += m.tmp[base+c]
			}
			dst[f] = sum * invChannels
		}
	}

	return frames, err
}
