// SPDX-License-Identifier: EPL-2.0

// Package pcm converts signed 16-bit PCM samples to and from their
// little-endian byte representation.
//
// The byte order is fixed by the WAV container and does not depend on the
// host, so every routine here goes through encoding/binary:
//
//	raw := pcm.PackSamples([]int16{100, -100})
//	// raw == []byte{0x64, 0x00, 0x9c, 0xff}
//
//	samples, err := pcm.UnpackSamples(raw)
//	if errors.Is(err, pcm.ErrMalformedPayload) {
//	    // odd byte count
//	}
//
// The package also holds the float32 <-> int16 conversions used by the
// stream adapters in the audio and formats packages.
package pcm
