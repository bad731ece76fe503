// SPDX-License-Identifier: EPL-2.0

package lpcsynth

import (
	"fmt"
	"os"

	"github.com/ik5/lpcsynth/audio"
	"github.com/ik5/lpcsynth/formats/aiff"
	"github.com/ik5/lpcsynth/formats/flac"
	"github.com/ik5/lpcsynth/formats/mp3"
	"github.com/ik5/lpcsynth/formats/vorbis"
	"github.com/ik5/lpcsynth/formats/wav"
	"github.com/ik5/lpcsynth/lpc"
)

// NewRegistry returns a registry with every bundled decoder, keyed by file
// extension.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("flac", flac.Decoder{})

	return reg
}

// LoadFile decodes the file at path with the decoder registered for its
// extension and folds it to a mono Buffer.
func LoadFile(reg *audio.Registry, path string, mix audio.MixMode) (*audio.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	src, err := reg.Decode(audio.FormatOf(path), f)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", path, err)
	}
	defer src.Close()

	buf, err := audio.ReadAll(src, mix)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}

	return buf, nil
}

// Resynthesize drains src, reduces it to mono with mix, resamples it to
// cfg.SampleRate when needed and runs the LPC analysis-resynthesis over it.
// src is not closed.
func Resynthesize(src audio.Source, mix audio.MixMode, cfg lpc.Config, opts ...lpc.Option) (*lpc.Result, error) {
	buf, err := audio.ReadAll(src, mix)
	if err != nil {
		return nil, err
	}

	return ResynthesizeBuffer(buf, cfg, opts...)
}

// ResynthesizeBuffer is Resynthesize for a signal already in memory.
func ResynthesizeBuffer(buf *audio.Buffer, cfg lpc.Config, opts ...lpc.Option) (*lpc.Result, error) {
	p, err := lpc.NewProcessor(cfg, opts...)
	if err != nil {
		return nil, err
	}

	buf, err = audio.Resample(buf, p.Config().SampleRate)
	if err != nil {
		return nil, err
	}

	return p.Process(buf.Samples)
}

// WriteFile writes res to path as a mono WAV file of the given bit depth
// (32 for IEEE float, 16 for PCM).
func WriteFile(path string, res *lpc.Result, bitDepth int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}

	if err := (wav.Encoder{BitDepth: bitDepth}).Encode(f, res.SampleRate, res.Samples); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %q: %w", path, err)
	}

	return f.Close()
}
