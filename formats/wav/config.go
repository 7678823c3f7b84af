// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"math"
	"time"
)

// AudioConfig describes the layout of a PCM stream. It is a plain value:
// build it once with NewAudioConfig or ConfigForSamples and pass it around
// by copy.
type AudioConfig struct {
	SampleSizeBytes uint16
	Channels        uint16
	SampleRate      uint32
	BitsPerSample   uint16
	SampleCount     uint32
	Duration        time.Duration
}

// NewAudioConfig derives SampleCount and BitsPerSample from a whole number
// of seconds.
func NewAudioConfig(sampleSize, channels uint16, sampleRate, durationSeconds uint32) (AudioConfig, error) {
	if durationSeconds == 0 {
		return AudioConfig{}, fmt.Errorf("%w: zero duration", ErrInvalidConfig)
	}

	count := uint64(channels) * uint64(durationSeconds) * uint64(sampleRate)
	if count > math.MaxUint32 {
		return AudioConfig{}, fmt.Errorf("%w: %d samples overflow the header", ErrInvalidConfig, count)
	}

	return ConfigForSamples(sampleSize, channels, sampleRate, uint32(count))
}

// ConfigForSamples builds a config for an exact sample count, as found in
// a decoded file. Duration is rounded down to the nanosecond.
func ConfigForSamples(sampleSize, channels uint16, sampleRate, sampleCount uint32) (AudioConfig, error) {
	switch {
	case sampleSize == 0:
		return AudioConfig{}, fmt.Errorf("%w: zero sample size", ErrInvalidConfig)
	case sampleSize > math.MaxUint16/8:
		return AudioConfig{}, fmt.Errorf("%w: sample size %d", ErrInvalidConfig, sampleSize)
	case channels == 0:
		return AudioConfig{}, fmt.Errorf("%w: zero channels", ErrInvalidConfig)
	case sampleRate == 0:
		return AudioConfig{}, fmt.Errorf("%w: zero sample rate", ErrInvalidConfig)
	}

	if uint64(sampleCount)*uint64(sampleSize)+riffOverhead > math.MaxUint32 {
		return AudioConfig{}, fmt.Errorf("%w: %d samples overflow the header", ErrInvalidConfig, sampleCount)
	}
	if uint32(channels)*uint32(sampleSize) > math.MaxUint16 {
		return AudioConfig{}, fmt.Errorf("%w: block align overflows", ErrInvalidConfig)
	}
	if uint64(channels)*uint64(sampleRate)*uint64(sampleSize) > math.MaxUint32 {
		return AudioConfig{}, fmt.Errorf("%w: byte rate overflows", ErrInvalidConfig)
	}

	frames := uint64(channels) * uint64(sampleRate)

	return AudioConfig{
		SampleSizeBytes: sampleSize,
		Channels:        channels,
		SampleRate:      sampleRate,
		BitsPerSample:   8 * sampleSize,
		SampleCount:     sampleCount,
		Duration:        time.Duration(uint64(sampleCount) * uint64(time.Second) / frames),
	}, nil
}

// DataSize is the byte length of the sample payload.
func (c AudioConfig) DataSize() uint32 {
	return c.SampleCount * uint32(c.SampleSizeBytes)
}

// ByteRate is the number of payload bytes per second of audio.
func (c AudioConfig) ByteRate() uint32 {
	return uint32(c.Channels) * c.SampleRate * uint32(c.SampleSizeBytes)
}

// BlockAlign is the byte size of one frame (one sample per channel).
func (c AudioConfig) BlockAlign() uint16 {
	return c.Channels * c.SampleSizeBytes
}
