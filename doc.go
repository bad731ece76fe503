// SPDX-License-Identifier: EPL-2.0

// Package lpcsynth resynthesizes speech and other audio through linear
// predictive coding.
//
// The signal is cut into Hann-windowed frames. Each frame gets an
// autocorrelation, a set of LPC coefficients, and a pitch and voicing
// decision. Voiced frames are excited with a cosine at the detected pitch
// before being run through the all-pole synthesis filter, and the filtered
// frames are written back at their hop offsets. The DSP lives in the lpc
// subpackage; this package wires it to the decoders and the WAV encoder.
//
// # Supported Formats
//
// Input is decoded through an audio.Registry keyed by file extension:
//   - WAV (PCM 8/16/24/32-bit, IEEE float) via formats/wav
//   - AIFF via formats/aiff
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - FLAC via formats/flac
//
// Output is a mono WAV file, 32-bit float by default.
//
// # Quick Start
//
//	buf, err := lpcsynth.LoadFile(lpcsynth.NewRegistry(), "voice.wav", audio.MixAverage)
//	if err != nil {
//		return err
//	}
//
//	res, err := lpcsynth.ResynthesizeBuffer(buf, lpc.DefaultConfig())
//	if err != nil {
//		return err
//	}
//
//	return lpcsynth.WriteFile("out.wav", res, 32)
//
// A decoded audio.Source can be handed to Resynthesize directly. Channels are
// folded to mono and the signal is resampled to the analysis rate first.
//
// # Degenerate Frames
//
// Silent frames, singular coefficient systems and unstable filters never
// abort a run. They are reported in lpc.Stats and in the per-frame summaries
// of lpc.Result.
package lpcsynth
