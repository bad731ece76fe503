// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrors_Messages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{ErrNotWavFile, "not a WAV file"},
		{ErrUnsupportedWavLayout, "unsupported WAV layout"},
		{ErrUnsupportedFormat, "unsupported WAV sample format"},
		{ErrUnsupportedWavChunks, "unsupported WAV chunks"},
		{ErrUnsupportedBitDepth, "unsupported output bit depth"},
	}

	for _, tt := range tests {
		if tt.err.Error() != tt.want {
			t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.want)
		}

		wrapped := fmt.Errorf("decode input.wav: %w", tt.err)
		if !errors.Is(wrapped, tt.err) {
			t.Errorf("errors.Is() failed for wrapped %v", tt.err)
		}
	}
}
