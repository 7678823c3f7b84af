// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Resampler converts src to another sample rate with Catmull-Rom
// interpolation, keeping the channel count. When downsampling, a one-pole
// low-pass runs over the input first.
//
// A source of N frames at rate S yields ceil(N*D/S) frames at rate D.
type Resampler struct {
	src      Source
	dstRate  int
	channels int

	// window holds source frames idx-1, idx, idx+1, idx+2. Output frames
	// are interpolated between window[1] and window[2].
	window [4][]float32
	real   [4]bool
	idx    int64
	out    int64
	primed bool
	done   bool

	alpha    float32
	smooth   []float32
	filtered bool

	in     []float32
	inN    int
	inPos  int
	srcEOF bool
}

// NewResampler returns a Resampler producing dstRate Hz. A non-positive
// rate on either side is reported by the first ReadSamples call.
func NewResampler(src Source, dstRate int) *Resampler {
	channels := max(1, src.Channels())

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		channels: channels,
		smooth:   make([]float32, channels),
		in:       make([]float32, max(channels, src.BufSize()/channels*channels)),
	}
	if srcRate := src.SampleRate(); dstRate > 0 && srcRate > dstRate {
		r.alpha = float32(dstRate) / float32(srcRate)
	}
	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }
func (r *Resampler) Close() error    { return r.src.Close() }

// ReadSamples fills dst with whole frames; len(dst) must be a multiple of
// Channels().
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	srcRate := int64(r.src.SampleRate())
	dstRate := int64(r.dstRate)
	if dstRate <= 0 || srcRate <= 0 {
		return 0, ErrInvalidRate
	}
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	for written+r.channels <= len(dst) && !r.done {
		pos := r.out * srcRate
		for r.idx < pos/dstRate && !r.done {
			if err := r.advance(); err != nil {
				return written, err
			}
		}
		if r.done {
			break
		}

		t := float32(pos%dstRate) / float32(dstRate)
		for c := range r.channels {
			dst[written+c] = catmullRom(r.window[0][c], r.window[1][c], r.window[2][c], r.window[3][c], t)
		}
		written += r.channels
		r.out++
	}

	if written == 0 && r.done {
		return 0, io.EOF
	}

	return written, nil
}

func (r *Resampler) prime() error {
	r.primed = true

	ok, err := r.nextFrame(r.window[1])
	if err != nil {
		return err
	}
	if !ok {
		r.done = true
		return nil
	}
	r.real[1] = true
	copy(r.window[0], r.window[1])

	for i := 2; i < 4; i++ {
		ok, err := r.nextFrame(r.window[i])
		if err != nil {
			return err
		}
		r.real[i] = ok
		if !ok {
			copy(r.window[i], r.window[i-1])
		}
	}

	return nil
}

// advance shifts the window by one source frame. Past the end of src the
// last frame is repeated so the tail can still be interpolated.
func (r *Resampler) advance() error {
	first := r.window[0]
	copy(r.window[:], r.window[1:])
	copy(r.real[:], r.real[1:])
	r.window[3] = first
	r.idx++

	ok, err := r.nextFrame(r.window[3])
	if err != nil {
		return err
	}
	r.real[3] = ok
	if !ok {
		copy(r.window[3], r.window[2])
	}

	if !r.real[1] {
		r.done = true
	}

	return nil
}

// nextFrame reads one frame from src into frame, applying the low-pass
// filter when downsampling.
func (r *Resampler) nextFrame(frame []float32) (bool, error) {
	for r.inPos+r.channels > r.inN {
		if r.srcEOF {
			return false, nil
		}

		n, err := r.src.ReadSamples(r.in)
		r.inN = n / r.channels * r.channels
		r.inPos = 0
		if err == io.EOF {
			r.srcEOF = true
		} else if err != nil {
			return false, fmt.Errorf("resampler source: %w", err)
		} else if n == 0 {
			return false, io.ErrNoProgress
		}
	}

	copy(frame, r.in[r.inPos:r.inPos+r.channels])
	r.inPos += r.channels

	if r.alpha > 0 {
		if !r.filtered {
			copy(r.smooth, frame)
			r.filtered = true
		}
		for c := range frame {
			r.smooth[c] += r.alpha * (frame[c] - r.smooth[c])
			frame[c] = r.smooth[c]
		}
	}

	return true, nil
}

func catmullRom(y0, y1, y2, y3, t float32) float32 {
	a := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	b := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	c := -0.5*y0 + 0.5*y2

	return ((a*t+b)*t+c)*t + y1
}
