// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides synthetic sample streams for tests. The types
// satisfy audio.Source without importing it, so in-package tests of audio can
// use them too.
package audiotest

import (
	"errors"
	"io"
	"math"
)

// Waveform returns the value of one channel at frame index.
type Waveform func(frame, channel int) float32

// Source streams a fixed number of frames produced by a Waveform.
type Source struct {
	rate     int
	channels int
	frames   int
	pos      int
	wave     Waveform
	closed   bool

	// Err, when set, is returned by ReadSamples once FailAt frames were read.
	Err    error
	FailAt int
}

func NewSource(rate, channels, frames int, wave Waveform) *Source {
	return &Source{rate: rate, channels: channels, frames: frames, wave: wave}
}

func Silence(rate, channels, frames int) *Source {
	return Constant(rate, channels, frames, 0)
}

func Constant(rate, channels, frames int, v float32) *Source {
	return NewSource(rate, channels, frames, func(int, int) float32 { return v })
}

// Sine produces the same tone on every channel.
func Sine(rate, channels, frames int, freq, amplitude float64) *Source {
	return NewSource(rate, channels, frames, func(i, _ int) float32 {
		return float32(amplitude * math.Sin(2*math.Pi*freq*float64(i)/float64(rate)))
	})
}

// Channels puts value ch+1 scaled by 0.1 on channel ch, handy for checking
// mixing and channel order.
func Channels(rate, channels, frames int) *Source {
	return NewSource(rate, channels, frames, func(_, ch int) float32 {
		return float32(ch+1) / 10
	})
}

func (s *Source) SampleRate() int { return s.rate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) BufSize() int    { return 4096 }

func (s *Source) Close() error {
	s.closed = true
	return nil
}

// Closed reports whether Close was called.
func (s *Source) Closed() bool { return s.closed }

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if s.Err != nil && s.pos >= s.FailAt {
		return 0, s.Err
	}
	if s.pos >= s.frames {
		return 0, io.EOF
	}

	n := min(len(dst)/s.channels, s.frames-s.pos)
	if s.Err != nil {
		n = min(n, s.FailAt-s.pos)
	}

	for f := range n {
		for ch := range s.channels {
			dst[f*s.channels+ch] = s.wave(s.pos+f, ch)
		}
	}
	s.pos += n

	if s.pos >= s.frames {
		return n * s.channels, io.EOF
	}

	return n * s.channels, nil
}

// Reader is the read half of audio.Source.
type Reader interface {
	ReadSamples(dst []float32) (int, error)
}

// Drain reads r to the end in chunks of size values.
func Drain(r Reader, size int) ([]float32, error) {
	var out []float32
	buf := make([]float32, size)

	for {
		n, err := r.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		if n == 0 {
			return out, io.ErrNoProgress
		}
	}
}
