// SPDX-License-Identifier: EPL-2.0

package wavemaker

import (
	"context"
	"fmt"

	"github.com/ik5/wavemaker/audio"
	"github.com/ik5/wavemaker/pitch"
)

// Analysis is the outcome of AnalyzeSource.
type Analysis struct {
	pitch.Result

	SampleRate int // rate the estimate was computed at
	Samples    int // mono samples analysed
}

// AnalyzeSource reads src to the end, folds it to mono, optionally resamples
// it to rate and estimates its pitch. A rate of 0 keeps the source rate.
//
// Lowering the rate shrinks the O(N*lags) AMDF cost at the price of period
// resolution.
func AnalyzeSource(ctx context.Context, src audio.Source, rate int, opts ...pitch.Option) (Analysis, error) {
	var (
		samples []int16
		err     error
	)

	if rate == 0 {
		rate = src.SampleRate()
		samples, err = CollectMono16(src, 0)
	} else {
		samples, _, err = ResampleToMono16(src, rate, 0)
	}
	if err != nil {
		return Analysis{}, err
	}
	if rate <= 0 {
		return Analysis{}, fmt.Errorf("source: %w", audio.ErrInvalidRate)
	}

	a := Analysis{SampleRate: rate, Samples: len(samples)}

	a.Result, err = pitch.Estimate(ctx, samples, uint32(rate), opts...)
	if err != nil {
		return a, err
	}

	return a, nil
}
