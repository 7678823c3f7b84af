// SPDX-License-Identifier: EPL-2.0

package pcm

import "errors"

var (
	// ErrMalformedPayload is returned when a byte payload can not be split
	// into whole 16-bit samples.
	ErrMalformedPayload = errors.New("malformed PCM payload")
)
