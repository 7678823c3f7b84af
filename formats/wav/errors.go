// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	// ErrFormat reports a chunk tag that does not match its expected literal.
	ErrFormat = errors.New("not a WAV file")
	// ErrUnsupportedFormat reports a non-PCM or otherwise unexpected fmt chunk.
	ErrUnsupportedFormat = errors.New("unsupported WAV format")
	// ErrTruncatedHeader is returned when fewer than HeaderSize bytes are available.
	ErrTruncatedHeader = errors.New("truncated WAV header")
	// ErrTruncatedPayload is returned when the data chunk declares more bytes than present.
	ErrTruncatedPayload = errors.New("truncated WAV payload")
	// ErrSizeMismatch is returned by Encode when the payload disagrees with the config.
	ErrSizeMismatch = errors.New("payload size does not match config")
	// ErrInvalidConfig rejects zero or overflowing AudioConfig fields.
	ErrInvalidConfig = errors.New("invalid audio config")
)
