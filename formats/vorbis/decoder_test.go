// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

// mockOggVorbisReader simulates the oggvorbis.Reader for testing
type mockOggVorbisReader struct {
	sampleRate   int
	channels     int
	samples      []float32
	offset       int
	returnErrors bool
}

func (m *mockOggVorbisReader) SampleRate() int { return m.sampleRate }
func (m *mockOggVorbisReader) Channels() int   { return m.channels }

func (m *mockOggVorbisReader) Read(buf []float32) (int, error) {
	if m.returnErrors {
		return 0, io.ErrUnexpectedEOF
	}
	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	n := copy(buf[:len(buf)/m.channels*m.channels], m.samples[m.offset:])
	m.offset += n

	return n, nil
}

func newTestSource(channels int, samples ...float32) *source {
	return &source{
		dec: &mockOggVorbisReader{
			sampleRate: 48000,
			channels:   channels,
			samples:    samples,
		},
		sampleRate: 48000,
		channels:   channels,
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	for name, data := range map[string][]byte{
		"text":  []byte("This is not Ogg data"),
		"empty": {},
	} {
		if _, err := (Decoder{}).Decode(bytes.NewReader(data)); !errors.Is(err, ErrNotVorbisFile) {
			t.Errorf("%s: Decode() error = %v, want ErrNotVorbisFile", name, err)
		}
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	src := newTestSource(2, 0.5, -0.5, 0.25, -0.25, 1, -1)

	dst := make([]float64, 4)
	n, err := src.ReadSamples(dst)
	if n != 4 || err != nil {
		t.Fatalf("ReadSamples() = (%d, %v), want (4, nil)", n, err)
	}

	expected := []float64{0.5, -0.5, 0.25, -0.25}
	for i := range expected {
		if dst[i] != expected[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], expected[i])
		}
	}

	n, _ = src.ReadSamples(dst)
	if n != 2 {
		t.Errorf("second ReadSamples() n = %d, want 2", n)
	}

	if n, err := src.ReadSamples(dst); n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("final ReadSamples() = (%d, %v), want (0, EOF)", n, err)
	}
}

func TestSource_ReadSamples_PartialFrame(t *testing.T) {
	t.Parallel()

	src := newTestSource(2, 0.1, 0.2, 0.3, 0.4)

	// Three values hold one whole stereo frame.
	n, err := src.ReadSamples(make([]float64, 3))
	if n != 2 || err != nil {
		t.Errorf("ReadSamples() = (%d, %v), want (2, nil)", n, err)
	}

	if n, err := src.ReadSamples(make([]float64, 1)); n != 0 || err != nil {
		t.Errorf("ReadSamples(1) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestSource_ReadSamples_Error(t *testing.T) {
	t.Parallel()

	src := newTestSource(1, 0.1)
	src.dec.(*mockOggVorbisReader).returnErrors = true

	if _, err := src.ReadSamples(make([]float64, 4)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := newTestSource(6)
	if src.SampleRate() != 48000 || src.Channels() != 6 {
		t.Errorf("got %d Hz, %d channels", src.SampleRate(), src.Channels())
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	samples := make([]float32, 1<<16)
	dst := make([]float64, 4096)

	b.ReportAllocs()
	for b.Loop() {
		src := newTestSource(2, samples...)
		for {
			if _, err := src.ReadSamples(dst); err != nil {
				break
			}
		}
	}
}
