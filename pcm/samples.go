// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"encoding/binary"
	"fmt"
)

// SampleSize is the number of bytes taken by one 16-bit sample.
const SampleSize = 2

// PackSamples encodes every sample as two little-endian bytes, in order.
func PackSamples(samples []int16) []byte {
	out := make([]byte, len(samples)*SampleSize)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[i*SampleSize:], uint16(s))
	}

	return out
}

// UnpackSamples decodes little-endian byte pairs back into samples.
// The input length must be even.
func UnpackSamples(raw []byte) ([]int16, error) {
	if len(raw)%SampleSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrMalformedPayload, len(raw))
	}

	out := make([]int16, len(raw)/SampleSize)
	for i := range out {
		out[i] = int16(binary.LittleEndian.Uint16(raw[i*SampleSize:]))
	}

	return out, nil
}
