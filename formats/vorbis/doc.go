// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams with
// github.com/jfreymuth/oggvorbis.
//
// The decoder already produces float samples, so they are only widened to
// float64; channel count and sample rate come from the Vorbis headers.
//
//	src, err := vorbis.Decoder{}.Decode(file)
package vorbis
