// SPDX-License-Identifier: EPL-2.0

package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{
		"LOG_LEVEL", "LOG_FORMAT", "OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_EXPORTER_OTLP_TOKEN",
		"WAVEMAKER_SAMPLE_RATE", "WAVEMAKER_CHANNELS", "WAVEMAKER_DURATION",
		"WAVEMAKER_AMPLITUDE", "WAVEMAKER_WORKERS",
	} {
		t.Setenv(k, "")
	}

	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))

	want := Config{
		LogLevel:   "info",
		LogFormat:  "json",
		SampleRate: 44100,
		Channels:   1,
		Duration:   5,
		Amplitude:  0.2,
		Workers:    runtime.NumCPU(),
	}
	if *cfg != want {
		t.Errorf("Load() = %+v, want %+v", *cfg, want)
	}
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("WAVEMAKER_SAMPLE_RATE", "8000")
	t.Setenv("WAVEMAKER_AMPLITUDE", "0.75")
	t.Setenv("WAVEMAKER_WORKERS", "not-a-number")

	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))

	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.SampleRate != 8000 {
		t.Errorf("SampleRate = %d, want 8000", cfg.SampleRate)
	}
	if cfg.Amplitude != 0.75 {
		t.Errorf("Amplitude = %v, want 0.75", cfg.Amplitude)
	}
	if cfg.Workers != runtime.NumCPU() {
		t.Errorf("Workers = %d, want fallback %d", cfg.Workers, runtime.NumCPU())
	}
}

func TestLoad_DotEnv(t *testing.T) {
	// Registered with t.Setenv so the value set by godotenv is undone.
	t.Setenv("WAVEMAKER_DURATION", "")
	os.Unsetenv("WAVEMAKER_DURATION")
	t.Setenv("WAVEMAKER_CHANNELS", "2")

	file := filepath.Join(t.TempDir(), ".env")
	content := "WAVEMAKER_DURATION=3\nWAVEMAKER_CHANNELS=4\n"
	if err := os.WriteFile(file, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg := Load(file)

	if cfg.Duration != 3 {
		t.Errorf("Duration = %d, want 3 from .env", cfg.Duration)
	}
	if cfg.Channels != 2 {
		t.Errorf("Channels = %d, want 2 from environment", cfg.Channels)
	}
}
