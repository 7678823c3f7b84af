// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
)

// HeaderSize is the byte length of the RIFF, fmt and data chunk headers.
const HeaderSize = 44

// Chunk offsets. They are part of the file format and must never move.
const (
	riffOffset = 0
	fmtOffset  = 12
	dataOffset = 36

	riffOverhead = HeaderSize - 8 // RIFF chunk size excludes its own id and size
	fmtChunkSize = 16
	formatPCM    = 1
)

// FourCC is a four character chunk identifier.
type FourCC [4]byte

func (f FourCC) String() string { return string(f[:]) }

var (
	tagRIFF = FourCC{'R', 'I', 'F', 'F'}
	tagWAVE = FourCC{'W', 'A', 'V', 'E'}
	tagFmt  = FourCC{'f', 'm', 't', ' '}
	tagData = FourCC{'d', 'a', 't', 'a'}
)

// RiffHeader is the 12 byte file preamble.
type RiffHeader struct {
	ID        FourCC
	ChunkSize uint32
	Format    FourCC
}

// FormatChunk is the 24 byte "fmt " chunk, PCM only.
type FormatChunk struct {
	ID            FourCC
	Size          uint32
	AudioFormat   uint16
	Channels      uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
}

// DataChunk is the 8 byte header in front of the sample payload.
type DataChunk struct {
	ID   FourCC
	Size uint32
}

// Header groups the three chunk headers of a canonical WAV file.
type Header struct {
	Riff   RiffHeader
	Format FormatChunk
	Data   DataChunk
}

// NewHeader derives every header field from cfg.
func NewHeader(cfg AudioConfig) Header {
	return Header{
		Riff: RiffHeader{
			ID:        tagRIFF,
			ChunkSize: riffOverhead + cfg.DataSize(),
			Format:    tagWAVE,
		},
		Format: FormatChunk{
			ID:            tagFmt,
			Size:          fmtChunkSize,
			AudioFormat:   formatPCM,
			Channels:      cfg.Channels,
			SampleRate:    cfg.SampleRate,
			ByteRate:      cfg.ByteRate(),
			BlockAlign:    cfg.BlockAlign(),
			BitsPerSample: cfg.BitsPerSample,
		},
		Data: DataChunk{
			ID:   tagData,
			Size: cfg.DataSize(),
		},
	}
}

// MarshalBinary returns the 44 byte little-endian header.
func (h Header) MarshalBinary() ([]byte, error) {
	buf := make([]byte, HeaderSize)

	// RIFF header (12 bytes)
	copy(buf[riffOffset:], h.Riff.ID[:])
	binary.LittleEndian.PutUint32(buf[riffOffset+4:], h.Riff.ChunkSize)
	copy(buf[riffOffset+8:], h.Riff.Format[:])

	// fmt chunk (24 bytes)
	copy(buf[fmtOffset:], h.Format.ID[:])
	binary.LittleEndian.PutUint32(buf[fmtOffset+4:], h.Format.Size)
	binary.LittleEndian.PutUint16(buf[fmtOffset+8:], h.Format.AudioFormat)
	binary.LittleEndian.PutUint16(buf[fmtOffset+10:], h.Format.Channels)
	binary.LittleEndian.PutUint32(buf[fmtOffset+12:], h.Format.SampleRate)
	binary.LittleEndian.PutUint32(buf[fmtOffset+16:], h.Format.ByteRate)
	binary.LittleEndian.PutUint16(buf[fmtOffset+20:], h.Format.BlockAlign)
	binary.LittleEndian.PutUint16(buf[fmtOffset+22:], h.Format.BitsPerSample)

	// data chunk header (8 bytes)
	copy(buf[dataOffset:], h.Data.ID[:])
	binary.LittleEndian.PutUint32(buf[dataOffset+4:], h.Data.Size)

	return buf, nil
}

// UnmarshalBinary parses and validates the first HeaderSize bytes of b.
func (h *Header) UnmarshalBinary(b []byte) error {
	if len(b) < HeaderSize {
		return fmt.Errorf("%w: %d of %d bytes", ErrTruncatedHeader, len(b), HeaderSize)
	}

	var parsed Header

	copy(parsed.Riff.ID[:], b[riffOffset:])
	parsed.Riff.ChunkSize = binary.LittleEndian.Uint32(b[riffOffset+4:])
	copy(parsed.Riff.Format[:], b[riffOffset+8:])

	copy(parsed.Format.ID[:], b[fmtOffset:])
	parsed.Format.Size = binary.LittleEndian.Uint32(b[fmtOffset+4:])
	parsed.Format.AudioFormat = binary.LittleEndian.Uint16(b[fmtOffset+8:])
	parsed.Format.Channels = binary.LittleEndian.Uint16(b[fmtOffset+10:])
	parsed.Format.SampleRate = binary.LittleEndian.Uint32(b[fmtOffset+12:])
	parsed.Format.ByteRate = binary.LittleEndian.Uint32(b[fmtOffset+16:])
	parsed.Format.BlockAlign = binary.LittleEndian.Uint16(b[fmtOffset+20:])
	parsed.Format.BitsPerSample = binary.LittleEndian.Uint16(b[fmtOffset+22:])

	copy(parsed.Data.ID[:], b[dataOffset:])
	parsed.Data.Size = binary.LittleEndian.Uint32(b[dataOffset+4:])

	if err := parsed.validate(); err != nil {
		return err
	}

	*h = parsed

	return nil
}

func (h Header) validate() error {
	tags := []struct {
		got    FourCC
		want   FourCC
		offset int
	}{
		{h.Riff.ID, tagRIFF, riffOffset},
		{h.Riff.Format, tagWAVE, riffOffset + 8},
		{h.Format.ID, tagFmt, fmtOffset},
		{h.Data.ID, tagData, dataOffset},
	}
	for _, tag := range tags {
		if tag.got != tag.want {
			return fmt.Errorf("%w: tag %q at offset %d, want %q", ErrFormat, tag.got, tag.offset, tag.want)
		}
	}

	if h.Format.Size != fmtChunkSize {
		return fmt.Errorf("%w: fmt chunk size %d", ErrUnsupportedFormat, h.Format.Size)
	}
	if h.Format.AudioFormat != formatPCM {
		return fmt.Errorf("%w: audio format %d is not PCM", ErrUnsupportedFormat, h.Format.AudioFormat)
	}

	return nil
}

// Config rebuilds the AudioConfig described by the header.
func (h Header) Config() (AudioConfig, error) {
	if h.Format.BitsPerSample == 0 || h.Format.BitsPerSample%8 != 0 {
		return AudioConfig{}, fmt.Errorf("%w: %d bits per sample", ErrUnsupportedFormat, h.Format.BitsPerSample)
	}

	sampleSize := h.Format.BitsPerSample / 8

	cfg, err := ConfigForSamples(sampleSize, h.Format.Channels, h.Format.SampleRate, h.Data.Size/uint32(sampleSize))
	if err != nil {
		return AudioConfig{}, fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
	}

	return cfg, nil
}
