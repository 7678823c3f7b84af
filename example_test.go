// SPDX-License-Identifier: EPL-2.0

package wavemaker_test

import (
	"bytes"
	"context"
	"fmt"

	"github.com/ik5/wavemaker"
	"github.com/ik5/wavemaker/formats/wav"
	"github.com/ik5/wavemaker/pitch"
	"github.com/ik5/wavemaker/synth"
)

func ExampleAnalyzeSource() {
	cfg, _ := wav.NewAudioConfig(2, 1, 8000, 1)
	tone, _ := synth.Sine(cfg, 400, 0.3)

	var buf bytes.Buffer
	_ = wav.WriteWAV16(&buf, int(cfg.SampleRate), tone)

	src, err := wav.Decoder{}.Decode(&buf)
	if err != nil {
		fmt.Println(err)
		return
	}

	res, err := wavemaker.AnalyzeSource(context.Background(), src, 0, pitch.WithMaxLag(200))
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("period %d, %.0f Hz\n", res.Period, res.FrequencyHz)
	// Output: period 20, 400 Hz
}

func ExampleResampleToMono16() {
	cfg, _ := wav.NewAudioConfig(2, 2, 44100, 1)
	tone, _ := synth.Sine(cfg, 440, 0.5)

	var buf bytes.Buffer
	w := wav.NewWaveFile(cfg)
	_ = w.SetSamples(tone)
	_, _ = w.WriteTo(&buf)

	src, _ := wav.Decoder{}.Decode(&buf)
	mono, rate, _ := wavemaker.ResampleToMono16(src, 8000, 4096)

	fmt.Println(len(mono), rate)
	// Output: 8000 8000
}
