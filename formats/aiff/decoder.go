// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/wavemaker/audio"
)

// pcmReader is the part of aiff.Decoder used by source.
type pcmReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type source struct {
	dec      pcmReader
	format   *goaudio.Format
	scale    float32
	buf      *goaudio.IntBuffer
	finished bool
}

func newSource(dec pcmReader, format *goaudio.Format, bitDepth int) *source {
	return &source{
		dec:    dec,
		format: format,
		scale:  1 / float32(int64(1)<<(bitDepth-1)),
	}
}

func (s *source) SampleRate() int { return s.format.SampleRate }
func (s *source) Channels() int   { return s.format.NumChannels }
func (s *source) Close() error    { return nil }

func (s *source) BufSize() int {
	if s.buf != nil {
		return cap(s.buf.Data)
	}

	return 4096
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst)%s.format.NumChannels != 0 {
		return 0, audio.ErrInvalidDstSize
	}
	if s.finished {
		return 0, io.EOF
	}
	if len(dst) == 0 {
		return 0, nil
	}

	if s.buf == nil || cap(s.buf.Data) < len(dst) {
		s.buf = &goaudio.IntBuffer{Data: make([]int, len(dst)), Format: s.format}
	}
	s.buf.Data = s.buf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.buf)
	for i, v := range s.buf.Data[:n] {
		dst[i] = float32(v) * s.scale
	}

	switch {
	case err == io.EOF || (err == nil && n < len(dst)):
		s.finished = true
		if n == 0 {
			return 0, io.EOF
		}
		return n, io.EOF
	case err != nil:
		return n, fmt.Errorf("reading aiff samples: %w", err)
	}

	return n, nil
}

// Decoder reads uncompressed AIFF with 8, 16, 24 or 32 bit samples.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	switch dec.BitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, dec.BitDepth)
	}

	format := dec.Format()
	if format == nil || format.NumChannels < 1 || format.SampleRate < 1 {
		return nil, ErrUnsupportedLayout
	}

	return newSource(dec, format, int(dec.BitDepth)), nil
}
