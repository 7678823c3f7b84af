// SPDX-License-Identifier: EPL-2.0

// Package wavemaker ties the WAV codec, the audio pipeline and the pitch
// estimator together.
//
// The subpackages can be used on their own:
//
//   - pcm packs and unpacks little-endian 16-bit samples.
//   - formats/wav encodes and decodes canonical 44-byte-header PCM files.
//   - formats/aiff decodes uncompressed AIFF input.
//   - pitch estimates a fundamental frequency with the Average Magnitude
//     Difference Function.
//   - synth generates test tones.
//   - audio streams float32 samples through resamplers and mixers.
//
// AnalyzeSource runs the whole chain on any audio.Source:
//
//	src, err := wav.Decoder{}.Decode(f)
//	if err != nil {
//		return err
//	}
//	res, err := wavemaker.AnalyzeSource(ctx, src, 8000, pitch.WithMaxLag(400))
//	if errors.Is(err, pitch.ErrNoPeriodFound) {
//		// silence or noise
//	}
//	fmt.Printf("%.1f Hz\n", res.FrequencyHz)
package wavemaker
