// SPDX-License-Identifier: EPL-2.0

package lpc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverwrite_LaterFrameWins(t *testing.T) {
	t.Parallel()

	dst := make([]float64, 8)

	assert.Equal(t, 4, Overwrite(dst, []float64{1, 1, 1, 1}, 0))
	assert.Equal(t, 4, Overwrite(dst, []float64{2, 2, 2, 2}, 2))

	assert.Equal(t, []float64{1, 1, 2, 2, 2, 2, 0, 0}, dst)
}

func TestOverwrite_TruncatesAtEnd(t *testing.T) {
	t.Parallel()

	dst := make([]float64, 5)

	assert.Equal(t, 2, Overwrite(dst, []float64{3, 3, 3, 3}, 3))
	assert.Equal(t, []float64{0, 0, 0, 3, 3}, dst)

	assert.Zero(t, Overwrite(dst, []float64{4}, 5))
	assert.Zero(t, Overwrite(dst, []float64{4}, -1))
	assert.Equal(t, []float64{0, 0, 0, 3, 3}, dst)
}
