// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files.
// Uncompressed PCM of 8, 16, 24 and 32 bits is supported with any channel
// count and sample rate; samples are normalized to float64 in [-1.0, 1.0).
//
//	source, err := aiff.Decoder{}.Decode(file)
//	buf := make([]float64, 4096)
//	n, err := source.ReadSamples(buf)
//
// # Errors
//
//   - ErrNotAiffFile: the input is not a valid AIFF file
//   - ErrUnsupportedBitDepth: a sample size the decoder cannot normalize
//   - ErrUnsupportedAiffLayout: no usable channel count or sample rate
//
// go-audio needs an io.ReadSeeker; other readers are buffered in memory.
package aiff
