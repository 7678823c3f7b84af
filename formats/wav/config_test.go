// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestNewAudioConfig_CDQualityFiveSeconds(t *testing.T) {
	t.Parallel()

	cfg, err := NewAudioConfig(2, 1, 44100, 5)
	if err != nil {
		t.Fatalf("NewAudioConfig() error = %v", err)
	}

	if cfg.SampleCount != 220500 {
		t.Errorf("SampleCount = %d, want 220500", cfg.SampleCount)
	}
	if cfg.BitsPerSample != 16 {
		t.Errorf("BitsPerSample = %d, want 16", cfg.BitsPerSample)
	}
	if cfg.DataSize() != 441000 {
		t.Errorf("DataSize() = %d, want 441000", cfg.DataSize())
	}
	if cfg.Duration != 5*time.Second {
		t.Errorf("Duration = %v, want 5s", cfg.Duration)
	}

	h := NewHeader(cfg)
	if h.Riff.ChunkSize != 441036 {
		t.Errorf("Riff.ChunkSize = %d, want 441036", h.Riff.ChunkSize)
	}
}

func TestNewAudioConfig_Derived(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		sampleSize uint16
		channels   uint16
		rate       uint32
		seconds    uint32
		wantCount  uint32
		byteRate   uint32
		blockAlign uint16
	}{
		{"mono 8-bit", 1, 1, 8000, 1, 8000, 8000, 1},
		{"stereo 16-bit", 2, 2, 48000, 2, 192000, 192000, 4},
		{"mono 24-bit", 3, 1, 96000, 1, 96000, 288000, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := NewAudioConfig(tt.sampleSize, tt.channels, tt.rate, tt.seconds)
			if err != nil {
				t.Fatalf("NewAudioConfig() error = %v", err)
			}

			if cfg.SampleCount != tt.wantCount {
				t.Errorf("SampleCount = %d, want %d", cfg.SampleCount, tt.wantCount)
			}
			if cfg.BitsPerSample != 8*tt.sampleSize {
				t.Errorf("BitsPerSample = %d, want %d", cfg.BitsPerSample, 8*tt.sampleSize)
			}
			if cfg.ByteRate() != tt.byteRate {
				t.Errorf("ByteRate() = %d, want %d", cfg.ByteRate(), tt.byteRate)
			}
			if cfg.BlockAlign() != tt.blockAlign {
				t.Errorf("BlockAlign() = %d, want %d", cfg.BlockAlign(), tt.blockAlign)
			}
		})
	}
}

func TestNewAudioConfig_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		sampleSize uint16
		channels   uint16
		rate       uint32
		seconds    uint32
	}{
		{"zero sample size", 0, 1, 44100, 1},
		{"zero channels", 2, 0, 44100, 1},
		{"zero rate", 2, 1, 0, 1},
		{"zero duration", 2, 1, 44100, 0},
		{"sample count overflow", 2, 2, math.MaxUint32, 2},
		{"data size overflow", 4, 1, 1 << 30, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewAudioConfig(tt.sampleSize, tt.channels, tt.rate, tt.seconds)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("NewAudioConfig() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfigForSamples_Duration(t *testing.T) {
	t.Parallel()

	cfg, err := ConfigForSamples(2, 1, 8000, 4000)
	if err != nil {
		t.Fatalf("ConfigForSamples() error = %v", err)
	}

	if cfg.Duration != 500*time.Millisecond {
		t.Errorf("Duration = %v, want 500ms", cfg.Duration)
	}

	cfg, err = ConfigForSamples(2, 2, 8000, 0)
	if err != nil {
		t.Fatalf("ConfigForSamples(0 samples) error = %v", err)
	}
	if cfg.Duration != 0 || cfg.DataSize() != 0 {
		t.Errorf("empty config = %+v, want zero duration and size", cfg)
	}
}
