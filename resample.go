// SPDX-License-Identifier: EPL-2.0

package wavemaker

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/wavemaker/audio"
	"github.com/ik5/wavemaker/pcm"
)

// ResampleToMono16 converts src to targetRate, folds it to mono and returns
// the whole stream as 16-bit samples together with the output rate.
// bufferSize is the number of mono samples read per call.
func ResampleToMono16(src audio.Source, targetRate, bufferSize int) ([]int16, int, error) {
	if targetRate <= 0 {
		return nil, 0, audio.ErrInvalidRate
	}

	var s audio.Source = src
	if src.SampleRate() != targetRate {
		s = audio.NewResampler(src, targetRate)
	}

	samples, err := CollectMono16(s, bufferSize)
	if err != nil {
		return nil, targetRate, err
	}

	return samples, targetRate, nil
}

// CollectMono16 folds src to mono at its own rate and reads it to the end.
func CollectMono16(src audio.Source, bufferSize int) ([]int16, error) {
	if bufferSize <= 0 {
		bufferSize = src.BufSize()
	}

	mono := audio.NewMonoMixer(src)
	buf := make([]float32, bufferSize)
	out := make([]int16, 0, bufferSize)

	for {
		n, err := mono.ReadSamples(buf)
		for _, v := range buf[:n] {
			out = append(out, pcm.Float32ToInt16(v))
		}

		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, fmt.Errorf("collecting samples: %w", err)
		}
		if n == 0 {
			return out, fmt.Errorf("collecting samples: %w", io.ErrNoProgress)
		}
	}
}
