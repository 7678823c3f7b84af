// SPDX-License-Identifier: EPL-2.0

// Package audio defines the streaming sample model used by the decoders and
// the analysis pipeline.
//
// A Source yields interleaved float32 samples in [-1, 1]. Sources chain:
//
//	src, err := wav.Decoder{}.Decode(f)
//	if err != nil {
//		return err
//	}
//	mono := audio.NewMonoMixer(audio.NewResampler(src, 8000))
//
// ReadSamples returns 0, io.EOF once a stream is exhausted. Some sources
// return the last samples together with io.EOF, so callers must consume n
// before checking err.
//
// Registry maps file extensions to decoders:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	dec, ok := reg.ForPath("take1.wav")
package audio
