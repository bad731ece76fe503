// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III streams with
// github.com/hajimehoshi/go-mp3.
//
// go-mp3 always produces interleaved stereo, so the Source reports two
// channels even for mono files; fold them with audio.MonoMixer.
//
//	src, err := mp3.Decoder{}.Decode(file)
//	buf, err := audio.ReadAll(src, audio.MixAverage)
package mp3
