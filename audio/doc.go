// SPDX-License-Identifier: EPL-2.0

// Package audio provides the input side of the resynthesis pipeline.
//
// It contains:
//   - Source interface for decoded audio
//   - Registry of decoders keyed by file extension
//   - MonoMixer for channel folding
//   - Resampler for sample rate conversion
//   - Buffer, ReadAll and Resample for whole-signal processing
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float64) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Samples are interleaved float64 values in [-1.0, 1.0]. Decoders in the
// formats packages and the processors in this package all implement Source,
// so they chain.
//
// # Loading a signal
//
// Analysis works on a whole mono signal at a fixed rate:
//
//	src, err := registry.Decode(audio.FormatOf(path), file)
//	buf, err := audio.ReadAll(src, audio.MixAverage)
//	buf, err = audio.Resample(buf, 44100)
//
// MixAverage averages the channels of every frame; MixFirst keeps channel 0.
//
// # Resampling
//
// Resampler uses Catmull-Rom cubic interpolation. When downsampling the
// input passes a one-pole lowpass first. The last output sample lands on or
// before the last input sample, so n input samples at rate a become
// floor((n-1)*b/a)+1 samples at rate b.
//
// # Error Handling
//
// ReadSamples returns io.EOF, possibly together with the final samples, when
// the stream is finished:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // process buf[:n]
//	    if errors.Is(err, io.EOF) {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
