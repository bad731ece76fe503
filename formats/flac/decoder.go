// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"fmt"
	"io"

	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"

	"github.com/ik5/lpcsynth/audio"
	"github.com/ik5/lpcsynth/utils"
)

// frameReader is the part of flac.Stream used by the source.
type frameReader interface {
	ParseNext() (*frame.Frame, error)
	Close() error
}

type source struct {
	stream     frameReader
	sampleRate int
	channels   int
	bitDepth   int

	// pending holds interleaved samples of the current frame not yet returned.
	pending []float64
	off     int
	err     error
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return s.stream.Close() }
func (s *source) BufSize() int    { return cap(s.pending) }

func (s *source) ReadSamples(dst []float64) (int, error) {
	want := (len(dst) / s.channels) * s.channels
	if want == 0 {
		return 0, nil
	}

	n := 0
	for n < want {
		if s.off == len(s.pending) {
			if s.err != nil {
				break
			}
			s.fill()
			continue
		}

		c := copy(dst[n:want], s.pending[s.off:])
		s.off += c
		n += c
	}

	if n < want && s.err != nil {
		return n, s.err
	}

	return n, nil
}

// fill decodes the next frame into pending, recording any error for later.
func (s *source) fill() {
	s.pending = s.pending[:0]
	s.off = 0

	f, err := s.stream.ParseNext()
	if err != nil {
		s.err = err
		return
	}

	if len(f.Subframes) != s.channels {
		s.err = fmt.Errorf("%w: got %d, want %d", ErrChannelMismatch, len(f.Subframes), s.channels)
		return
	}

	samples := len(f.Subframes[0].Samples)
	for i := range samples {
		for ch := range s.channels {
			v := int(f.Subframes[ch].Samples[i])
			s.pending = append(s.pending, utils.PCMToFloat(v, s.bitDepth))
		}
	}
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFlacFile, err)
	}

	bitDepth := int(stream.Info.BitsPerSample)
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		_ = stream.Close()
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	return &source{
		stream:     stream,
		sampleRate: int(stream.Info.SampleRate),
		channels:   int(stream.Info.NChannels),
		bitDepth:   bitDepth,
		pending:    make([]float64, 0, 4096),
	}, nil
}
