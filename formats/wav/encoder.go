// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/lpcsynth/utils"
)

// Encoder writes mono WAV files.
type Encoder struct {
	// BitDepth selects 32 for IEEE float or 16 for PCM. Zero means 32.
	BitDepth int
}

const encodeChunk = 8192

// Encode writes samples at sampleRate to w. Float output keeps the samples
// as they are; 16-bit output clamps them to [-1, 1].
func (e Encoder) Encode(w io.WriteSeeker, sampleRate int, samples []float64) error {
	depth := e.BitDepth
	if depth == 0 {
		depth = 32
	}

	var (
		format  int
		convert func(float64) int
	)
	switch depth {
	case 32:
		format = formatFloat
		convert = utils.Float32Bits
	case 16:
		format = formatPCM
		convert = func(x float64) int { return int(utils.FloatToInt16(x)) }
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, depth)
	}

	enc := gowav.NewEncoder(w, sampleRate, depth, 1, format)

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           make([]int, min(len(samples), encodeChunk)),
		SourceBitDepth: depth,
	}
	// The header goes out with the first Write, so an empty signal still
	// needs one.
	for start := 0; start == 0 || start < len(samples); start += encodeChunk {
		chunk := samples[start:min(start+encodeChunk, len(samples))]

		buf.Data = buf.Data[:len(chunk)]
		for i, x := range chunk {
			buf.Data[i] = convert(x)
		}

		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("writing wav samples: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav: %w", err)
	}

	return nil
}
