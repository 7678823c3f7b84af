// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
)

// Encode stitches the header derived from cfg to sampleBytes. The payload
// is copied verbatim and must be exactly cfg.DataSize() bytes long.
func Encode(cfg AudioConfig, sampleBytes []byte) ([]byte, error) {
	if uint64(len(sampleBytes)) != uint64(cfg.DataSize()) {
		return nil, fmt.Errorf("%w: got %d bytes, config wants %d", ErrSizeMismatch, len(sampleBytes), cfg.DataSize())
	}

	header, err := NewHeader(cfg).MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	out := make([]byte, 0, HeaderSize+len(sampleBytes))
	out = append(out, header...)
	out = append(out, sampleBytes...)

	return out, nil
}

// Decode parses a complete WAV file held in memory. Bytes past the declared
// data size are ignored.
func Decode(b []byte) (*WaveFile, error) {
	var h Header
	if err := h.UnmarshalBinary(b); err != nil {
		return nil, err
	}

	cfg, err := h.Config()
	if err != nil {
		return nil, err
	}

	payload := b[HeaderSize:]
	if uint64(len(payload)) < uint64(h.Data.Size) {
		return nil, fmt.Errorf("%w: %d of %d bytes", ErrTruncatedPayload, len(payload), h.Data.Size)
	}

	return &WaveFile{
		Header:  h,
		Payload: bytes.Clone(payload[:h.Data.Size]),
		config:  cfg,
	}, nil
}
