// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/lpcsynth/audio"
	"github.com/ik5/lpcsynth/utils"
)

// WAVE format tags.
const (
	formatPCM   = 1
	formatFloat = 3
)

type wavSource struct {
	r          io.Reader
	sampleRate int
	channels   int
	format     int
	bitDepth   int
	buf        []byte
}

func (s *wavSource) SampleRate() int { return s.sampleRate }
func (s *wavSource) Channels() int   { return s.channels }
func (s *wavSource) BufSize() int    { return 4096 }
func (s *wavSource) Close() error    { return nil }

func (s *wavSource) bytesPerSample() int { return s.bitDepth / 8 }

func (s *wavSource) ReadSamples(dst []float64) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	width := s.bytesPerSample()
	need := len(dst) * width
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	n, err := io.ReadFull(s.r, s.buf)
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		err = io.EOF
	case err != nil:
		return 0, fmt.Errorf("%w", err)
	}

	samples := n / width
	for i := range samples {
		dst[i] = s.decode(s.buf[i*width : (i+1)*width])
	}

	return samples, err
}

// decode converts one little-endian sample.
func (s *wavSource) decode(b []byte) float64 {
	if s.format == formatFloat {
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(b)))
	}

	var v int
	switch s.bitDepth {
	case 8:
		// 8-bit WAV is unsigned with a 128 midpoint.
		v = int(b[0]) - 128
	case 16:
		v = int(int16(binary.LittleEndian.Uint16(b)))
	case 24:
		v = int(int32(uint32(b[0])<<8|uint32(b[1])<<16|uint32(b[2])<<24) >> 8)
	case 32:
		v = int(int32(binary.LittleEndian.Uint32(b)))
	}

	return utils.PCMToFloat(v, s.bitDepth)
}

// Decoder reads RIFF/WAVE files holding PCM (8, 16, 24 or 32 bit) or
// 32-bit IEEE float samples.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		// go-audio needs to seek while looking for chunks.
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	header := make([]byte, 12)
	if _, err := io.ReadFull(rs, header); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}
	if !bytes.Equal(header[:4], []byte("RIFF")) || !bytes.Equal(header[8:12], []byte("WAVE")) {
		return nil, ErrNotWavFile
	}
	if _, err := rs.Seek(-int64(len(header)), io.SeekCurrent); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	dec := gowav.NewDecoder(rs)
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
	}

	format := int(dec.WavAudioFormat)
	bitDepth := int(dec.BitDepth)

	switch {
	case format == formatPCM && (bitDepth == 8 || bitDepth == 16 || bitDepth == 24 || bitDepth == 32):
	case format == formatFloat && bitDepth == 32:
	default:
		return nil, fmt.Errorf("%w: format tag %d, %d bits", ErrUnsupportedFormat, format, bitDepth)
	}
	if dec.NumChans == 0 || dec.SampleRate == 0 {
		return nil, fmt.Errorf("%w: %d channels at %d Hz", ErrUnsupportedWavLayout, dec.NumChans, dec.SampleRate)
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavChunks, err)
	}
	if dec.PCMChunk == nil {
		return nil, fmt.Errorf("%w: no data chunk", ErrUnsupportedWavChunks)
	}

	return &wavSource{
		r:          io.LimitReader(dec.PCMChunk, int64(dec.PCMChunk.Size)),
		sampleRate: int(dec.SampleRate),
		channels:   int(dec.NumChans),
		format:     format,
		bitDepth:   bitDepth,
		buf:        make([]byte, 4096),
	}, nil
}
