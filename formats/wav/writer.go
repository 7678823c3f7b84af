// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"math"

	"github.com/ik5/wavemaker/pcm"
)

// WriteWAV16 writes a mono 16-bit PCM WAV at sampleRate.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	if sampleRate <= 0 || uint64(sampleRate) > math.MaxUint32 || uint64(len(samples)) > math.MaxUint32 {
		return fmt.Errorf("%w: rate %d with %d samples", ErrInvalidConfig, sampleRate, len(samples))
	}

	cfg, err := ConfigForSamples(pcm.SampleSize, 1, uint32(sampleRate), uint32(len(samples)))
	if err != nil {
		return err
	}

	b, err := Encode(cfg, pcm.PackSamples(samples))
	if err != nil {
		return err
	}

	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
