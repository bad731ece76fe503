// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding on top of
// github.com/go-audio/wav.
//
// # Decoding
//
// Decoder accepts PCM at 8, 16, 24 and 32 bits and 32-bit IEEE float, with
// any channel count and sample rate. Chunks other than fmt and data are
// skipped. Samples come out as float64, PCM scaled to [-1.0, 1.0):
//
//	source, err := wav.Decoder{}.Decode(file)
//	buf := make([]float64, 4096)
//	n, err := source.ReadSamples(buf)
//
// # Encoding
//
// Encoder writes mono files, either 32-bit IEEE float (the default, samples
// are stored unchanged) or 16-bit PCM (samples are clamped to [-1, 1]):
//
//	f, _ := os.Create("out.wav")
//	err := wav.Encoder{BitDepth: 16}.Encode(f, 44100, samples)
//
// The writer must be seekable because the RIFF sizes are patched once all
// samples are written.
//
// # Errors
//
//   - ErrNotWavFile: the input lacks the RIFF/WAVE header
//   - ErrUnsupportedFormat: a format tag or bit depth the decoder cannot read
//   - ErrUnsupportedWavLayout: a malformed fmt chunk
//   - ErrUnsupportedWavChunks: no data chunk
//   - ErrUnsupportedBitDepth: an Encoder depth other than 16 or 32
package wav
