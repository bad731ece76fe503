// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

// ErrNotVorbisFile wraps any error raised while reading the Ogg Vorbis headers.
var ErrNotVorbisFile = errors.New("not an Ogg Vorbis stream")
