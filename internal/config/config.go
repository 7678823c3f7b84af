// SPDX-License-Identifier: EPL-2.0

// Package config loads runtime settings from the environment and an optional
// .env file.
package config

import (
	"log/slog"
	"os"
	"runtime"
	"strconv"
)

type Config struct {
	LogLevel  string
	LogFormat string

	OTLPEndpoint string
	OTLPToken    string

	// Defaults for generated tones and analysis.
	SampleRate int
	Channels   int
	Duration   int // seconds
	Amplitude  float64
	Workers    int
}

// Load reads envFile when it exists and then the process environment.
// Malformed numeric values fall back to their defaults.
func Load(envFile string) *Config {
	if err := loadDotEnv(envFile); err != nil {
		slog.Debug("no .env file loaded, using environment variables", "file", envFile, "error", err)
	}

	return &Config{
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "json"),
		OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		OTLPToken:    getEnv("OTEL_EXPORTER_OTLP_TOKEN", ""),
		SampleRate:   getEnvAsInt("WAVEMAKER_SAMPLE_RATE", 44100),
		Channels:     getEnvAsInt("WAVEMAKER_CHANNELS", 1),
		Duration:     getEnvAsInt("WAVEMAKER_DURATION", 5),
		Amplitude:    getEnvAsFloat("WAVEMAKER_AMPLITUDE", 0.2),
		Workers:      getEnvAsInt("WAVEMAKER_WORKERS", runtime.NumCPU()),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}
