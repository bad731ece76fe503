// SPDX-License-Identifier: EPL-2.0

// Package flac decodes FLAC streams with github.com/mewkiz/flac.
//
// Frames are decoded one at a time and their subframes interleaved, so
// ReadSamples always returns whole frames of channel data normalized to
// [-1.0, 1.0).
package flac
