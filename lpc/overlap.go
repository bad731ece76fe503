// SPDX-License-Identifier: EPL-2.0

package lpc

// Overwrite writes frame into dst at offset, replacing whatever an earlier
// frame left there. Samples that would land past the end of dst are dropped.
// It returns the number of samples written.
func Overwrite(dst, frame []float64, offset int) int {
	if offset < 0 || offset >= len(dst) {
		return 0
	}
	return copy(dst[offset:], frame)
}
