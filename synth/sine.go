// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"errors"
	"fmt"
	"math"

	"github.com/ik5/wavemaker/formats/wav"
	"github.com/ik5/wavemaker/pcm"
)

// ErrInvalidTone rejects frequencies outside (0, rate/2] and amplitudes
// outside [0, 1].
var ErrInvalidTone = errors.New("invalid tone parameters")

// Sine returns cfg.SampleCount samples of a sine wave at freq Hz. amplitude
// scales the peak relative to full scale.
func Sine(cfg wav.AudioConfig, freq, amplitude float64) ([]int16, error) {
	if cfg.SampleSizeBytes != pcm.SampleSize {
		return nil, fmt.Errorf("%w: %d-bit samples", wav.ErrUnsupportedFormat, cfg.BitsPerSample)
	}
	if cfg.Channels == 0 || cfg.SampleRate == 0 {
		return nil, fmt.Errorf("%w: empty config", wav.ErrInvalidConfig)
	}

	nyquist := float64(cfg.SampleRate) / 2
	if math.IsNaN(freq) || freq <= 0 || freq > nyquist {
		return nil, fmt.Errorf("%w: frequency %g Hz (nyquist %g Hz)", ErrInvalidTone, freq, nyquist)
	}
	if math.IsNaN(amplitude) || amplitude < 0 || amplitude > 1 {
		return nil, fmt.Errorf("%w: amplitude %g", ErrInvalidTone, amplitude)
	}

	channels := int(cfg.Channels)
	out := make([]int16, cfg.SampleCount)
	step := 2 * math.Pi * freq / float64(cfg.SampleRate)
	peak := amplitude * math.MaxInt16

	for frame := 0; frame*channels < len(out); frame++ {
		v := int16(peak * math.Sin(step*float64(frame)))
		for ch := range channels {
			if i := frame*channels + ch; i < len(out) {
				out[i] = v
			}
		}
	}

	return out, nil
}
