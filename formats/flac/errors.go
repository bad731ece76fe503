// SPDX-License-Identifier: EPL-2.0

package flac

import "errors"

var (
	// ErrNotFlacFile wraps any error raised while parsing the stream header.
	ErrNotFlacFile = errors.New("not a FLAC stream")
	// ErrUnsupportedBitDepth is returned for sample sizes other than 8, 16, 24 and 32 bits.
	ErrUnsupportedBitDepth = errors.New("unsupported FLAC bit depth")
	// ErrChannelMismatch is returned when a frame carries a different channel count than the stream header.
	ErrChannelMismatch = errors.New("FLAC frame channel count mismatch")
)
