// SPDX-License-Identifier: EPL-2.0

// Package synth generates test tones as 16-bit PCM samples.
//
//	cfg, _ := wav.NewAudioConfig(2, 1, 44100, 5)
//	samples, err := synth.Sine(cfg, 220, 0.2)
//	err = wav.WriteFile("sine.wav", cfg, samples)
//
// The sample count always matches cfg.SampleCount, so the result can be
// handed to the wav package without resizing. Multi-channel configs get
// the same tone on every channel.
package synth
