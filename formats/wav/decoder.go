// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	"github.com/ik5/wavemaker/audio"
	"github.com/ik5/wavemaker/pcm"
)

type wavSource struct {
	sampleRate int
	channels   int
	samples    []int16
	pos        int
}

func (s *wavSource) SampleRate() int { return s.sampleRate }
func (s *wavSource) Channels() int   { return s.channels }
func (s *wavSource) BufSize() int    { return 4096 }
func (s *wavSource) Close() error    { return nil }

func (s *wavSource) ReadSamples(dst []float32) (int, error) {
	if len(dst)%s.channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}
	if s.pos >= len(s.samples) {
		return 0, io.EOF
	}

	n := copyFloats(dst, s.samples[s.pos:])
	s.pos += n

	return n, nil
}

func copyFloats(dst []float32, src []int16) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = pcm.Int16ToFloat32(src[i])
	}

	return n
}

// Decoder adapts Decode to the audio.Decoder interface. The whole input is
// read before any sample is served.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading wav data: %w", err)
	}

	w, err := Decode(b)
	if err != nil {
		return nil, err
	}

	samples, err := w.Samples()
	if err != nil {
		return nil, err
	}

	return NewSource(w.Config(), samples), nil
}

// NewSource serves already decoded samples as an audio.Source.
func NewSource(cfg AudioConfig, samples []int16) audio.Source {
	return &wavSource{
		sampleRate: int(cfg.SampleRate),
		channels:   int(cfg.Channels),
		samples:    samples,
	}
}
