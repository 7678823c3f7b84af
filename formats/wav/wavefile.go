// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"time"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/wavemaker/pcm"
)

// WaveFile is one decoded or to-be-written file: the three chunk headers
// and the raw sample payload. len(Payload) always equals Header.Data.Size.
type WaveFile struct {
	Header  Header
	Payload []byte

	config AudioConfig
}

// NewWaveFile returns a silent file laid out according to cfg.
func NewWaveFile(cfg AudioConfig) *WaveFile {
	return &WaveFile{
		Header:  NewHeader(cfg),
		Payload: make([]byte, cfg.DataSize()),
		config:  cfg,
	}
}

// Config returns the layout the file was built or decoded with.
func (w *WaveFile) Config() AudioConfig { return w.config }

// SetSamples replaces the payload with 16-bit samples. The sample count
// must match the config.
func (w *WaveFile) SetSamples(samples []int16) error {
	if err := w.require16Bit(); err != nil {
		return err
	}

	raw := pcm.PackSamples(samples)
	if uint64(len(raw)) != uint64(w.Header.Data.Size) {
		return fmt.Errorf("%w: got %d samples, config wants %d", ErrSizeMismatch, len(samples), w.config.SampleCount)
	}

	w.Payload = raw

	return nil
}

// Samples decodes the whole payload as interleaved 16-bit samples.
func (w *WaveFile) Samples() ([]int16, error) {
	if err := w.require16Bit(); err != nil {
		return nil, err
	}

	return pcm.UnpackSamples(w.Payload)
}

// SamplesUntil decodes the samples covering the first d of audio, across
// all channels. Durations past the end return the whole payload.
func (w *WaveFile) SamplesUntil(d time.Duration) ([]int16, error) {
	samples, err := w.Samples()
	if err != nil {
		return nil, err
	}

	if d <= 0 {
		return samples[:0], nil
	}

	perSecond := uint64(w.config.SampleRate) * uint64(w.config.Channels)
	n := perSecond * uint64(d.Milliseconds()) / 1000
	if n > uint64(len(samples)) {
		n = uint64(len(samples))
	}

	return samples[:n], nil
}

// Bytes encodes the header and payload.
func (w *WaveFile) Bytes() ([]byte, error) {
	return Encode(w.config, w.Payload)
}

// WriteTo implements io.WriterTo.
func (w *WaveFile) WriteTo(dst io.Writer) (int64, error) {
	b, err := w.Bytes()
	if err != nil {
		return 0, err
	}

	n, err := dst.Write(b)
	if err != nil {
		return int64(n), fmt.Errorf("%w", err)
	}

	return int64(n), nil
}

// IntBuffer exposes the samples as a go-audio buffer for use with the
// go-audio tool chain.
func (w *WaveFile) IntBuffer() (*goaudio.IntBuffer, error) {
	samples, err := w.Samples()
	if err != nil {
		return nil, err
	}

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}

	return &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: int(w.config.Channels),
			SampleRate:  int(w.config.SampleRate),
		},
		Data:           data,
		SourceBitDepth: int(w.config.BitsPerSample),
	}, nil
}

func (w *WaveFile) require16Bit() error {
	if w.config.SampleSizeBytes != pcm.SampleSize {
		return fmt.Errorf("%w: %d-bit samples", ErrUnsupportedFormat, w.config.BitsPerSample)
	}

	return nil
}
