// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes uncompressed AIFF files into an audio.Source using
// github.com/go-audio/aiff.
//
// Samples are scaled to [-1, 1] by their bit depth. 8, 16, 24 and 32 bit
// files are accepted; anything else fails with ErrUnsupportedBitDepth.
// Inputs that are not seekable are read into memory first.
//
//	f, err := os.Open("voice.aiff")
//	if err != nil {
//		return err
//	}
//	defer f.Close()
//
//	src, err := aiff.Decoder{}.Decode(f)
package aiff
