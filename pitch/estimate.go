// SPDX-License-Identifier: EPL-2.0

package pitch

import (
	"context"
	"fmt"
)

// EstimatePeriod returns the position of the first minimum, the smallest
// lag at which the signal lines up with itself again.
func EstimatePeriod(minima []Minimum) (int, error) {
	if len(minima) == 0 {
		return 0, ErrNoPeriodFound
	}

	return minima[0].Position, nil
}

// ToFrequencyHz converts a period in samples to a frequency.
func ToFrequencyHz(period int, sampleRate uint32) (float64, error) {
	if period <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidPeriod, period)
	}

	return float64(sampleRate) / float64(period), nil
}

// Result is the outcome of Estimate.
type Result struct {
	Period      int
	FrequencyHz float64
	Minima      []Minimum
}

// Estimate runs AMDF, minimum search and period conversion over mono
// samples recorded at sampleRate. ErrNoPeriodFound is returned, with the
// empty minima list, when the buffer shows no periodic structure.
func Estimate(ctx context.Context, samples []int16, sampleRate uint32, opts ...Option) (Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	lags := len(samples) - 1
	if o.maxLag > 0 && o.maxLag < lags {
		lags = o.maxLag
	}

	var series Series
	if o.workers > 1 {
		var err error
		series, err = computeAMDFParallel(ctx, samples, lags, o.workers)
		if err != nil {
			return Result{}, err
		}
	} else {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("computing AMDF: %w", err)
		}
		series = computeAMDF(samples, lags)
	}

	res := Result{Minima: FindLocalMinima(series)}

	period, err := EstimatePeriod(res.Minima)
	if err != nil {
		return res, err
	}

	hz, err := ToFrequencyHz(period, sampleRate)
	if err != nil {
		return res, err
	}

	res.Period = period
	res.FrequencyHz = hz

	return res, nil
}
