// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"testing"
	"time"
)

func TestNewWaveFile_Silent(t *testing.T) {
	t.Parallel()

	cfg := mustConfig(t, 2, 1, 8000, 16)
	w := NewWaveFile(cfg)

	if uint32(len(w.Payload)) != w.Header.Data.Size {
		t.Fatalf("payload len = %d, data size = %d", len(w.Payload), w.Header.Data.Size)
	}

	samples, err := w.Samples()
	if err != nil {
		t.Fatalf("Samples() error = %v", err)
	}
	for i, s := range samples {
		if s != 0 {
			t.Fatalf("sample[%d] = %d, want 0", i, s)
		}
	}
}

func TestWaveFile_SetSamples(t *testing.T) {
	t.Parallel()

	w := NewWaveFile(mustConfig(t, 2, 1, 8000, 3))

	if err := w.SetSamples([]int16{1, 2}); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("SetSamples(short) error = %v, want ErrSizeMismatch", err)
	}

	want := []int16{-1, 0, 1}
	if err := w.SetSamples(want); err != nil {
		t.Fatalf("SetSamples() error = %v", err)
	}

	got, err := w.Samples()
	if err != nil {
		t.Fatalf("Samples() error = %v", err)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestWaveFile_Not16Bit(t *testing.T) {
	t.Parallel()

	w := NewWaveFile(mustConfig(t, 1, 1, 8000, 4))

	if _, err := w.Samples(); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Samples() error = %v, want ErrUnsupportedFormat", err)
	}
	if err := w.SetSamples([]int16{1, 2}); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("SetSamples() error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestWaveFile_SamplesUntil(t *testing.T) {
	t.Parallel()

	// one second of mono at 1 kHz
	samples := make([]int16, 1000)
	for i := range samples {
		samples[i] = int16(i)
	}

	w, err := Decode(encodeMono16(t, 1000, samples))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	tests := []struct {
		name string
		d    time.Duration
		want int
	}{
		{"zero", 0, 0},
		{"negative", -time.Second, 0},
		{"50ms", 50 * time.Millisecond, 50},
		{"sub-millisecond rounds down", 1500 * time.Microsecond, 1},
		{"exact", time.Second, 1000},
		{"past the end", 5 * time.Second, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := w.SamplesUntil(tt.d)
			if err != nil {
				t.Fatalf("SamplesUntil() error = %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("SamplesUntil(%v) len = %d, want %d", tt.d, len(got), tt.want)
			}
			for i, s := range got {
				if s != int16(i) {
					t.Fatalf("sample[%d] = %d, want %d", i, s, i)
				}
			}
		})
	}
}

func TestWaveFile_SamplesUntil_Stereo(t *testing.T) {
	t.Parallel()

	cfg := mustConfig(t, 2, 2, 100, 200)
	w := NewWaveFile(cfg)

	got, err := w.SamplesUntil(500 * time.Millisecond)
	if err != nil {
		t.Fatalf("SamplesUntil() error = %v", err)
	}

	// 100 frames per second, two samples per frame
	if len(got) != 100 {
		t.Errorf("len = %d, want 100", len(got))
	}
}

func TestWaveFile_WriteTo(t *testing.T) {
	t.Parallel()

	samples := []int16{5, -5, 5, -5}
	want := encodeMono16(t, 8000, samples)

	w, err := Decode(want)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	var buf bytes.Buffer
	n, err := w.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}

	if n != int64(len(want)) {
		t.Errorf("WriteTo() n = %d, want %d", n, len(want))
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Error("WriteTo() output differs from the decoded input")
	}
}

func TestWaveFile_IntBuffer(t *testing.T) {
	t.Parallel()

	samples := []int16{-32768, 0, 32767}
	w, err := Decode(encodeMono16(t, 22050, samples))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	buf, err := w.IntBuffer()
	if err != nil {
		t.Fatalf("IntBuffer() error = %v", err)
	}

	if buf.Format.SampleRate != 22050 || buf.Format.NumChannels != 1 {
		t.Errorf("Format = %+v, want 22050 Hz mono", buf.Format)
	}
	if buf.SourceBitDepth != 16 {
		t.Errorf("SourceBitDepth = %d, want 16", buf.SourceBitDepth)
	}
	for i, s := range samples {
		if buf.Data[i] != int(s) {
			t.Errorf("Data[%d] = %d, want %d", i, buf.Data[i], s)
		}
	}
}
