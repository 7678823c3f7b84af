// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes canonical PCM WAV files.
//
// Only one layout is understood: a 12 byte RIFF header, a 24 byte "fmt "
// chunk and an 8 byte "data" chunk header, followed by the payload. All
// numbers are little-endian and every field sits at a fixed offset:
//
//	offset  size  field
//	     0     4  "RIFF"
//	     4     4  36 + data size
//	     8     4  "WAVE"
//	    12     4  "fmt "
//	    16     4  16
//	    20     2  1 (PCM)
//	    22     2  channels
//	    24     4  sample rate
//	    28     4  byte rate
//	    32     2  block align
//	    34     2  bits per sample
//	    36     4  "data"
//	    40     4  data size
//	    44     N  samples
//
// # Configuration
//
// An AudioConfig carries the sample size, channel count, sample rate and
// sample count of a stream. The header is derived from it:
//
//	cfg, err := wav.NewAudioConfig(2, 1, 44100, 5) // 16-bit mono, 5 seconds
//	// cfg.SampleCount == 220500, cfg.DataSize() == 441000
//
// # Encoding
//
//	raw := pcm.PackSamples(samples)
//	file, err := wav.Encode(cfg, raw)
//
// Encode fails with ErrSizeMismatch when raw does not hold exactly
// cfg.SampleCount samples. WriteFile and WriteWAV16 wrap the same path for
// files and writers.
//
// # Decoding
//
//	w, err := wav.Decode(file)
//	samples, err := w.Samples()
//	first, err := w.SamplesUntil(50 * time.Millisecond)
//
// Decode fails fast:
//   - ErrTruncatedHeader: fewer than 44 bytes
//   - ErrFormat: one of "RIFF", "WAVE", "fmt ", "data" is missing
//   - ErrUnsupportedFormat: fmt size other than 16, or not PCM
//   - ErrTruncatedPayload: less payload than the data chunk declares
//
// Bytes after the declared payload are ignored.
//
// Decoder adapts the codec to audio.Decoder so WAV input can be fed through
// the audio pipeline (mono mixing, resampling).
package wav
