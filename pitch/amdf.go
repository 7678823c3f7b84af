// SPDX-License-Identifier: EPL-2.0

package pitch

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Series holds one AMDF value per lag; the index is the lag.
type Series []float32

// ComputeAMDF returns the AMDF of samples for every lag in [0, N-2].
// Buffers shorter than two samples yield an empty series.
func ComputeAMDF(samples []int16) Series {
	return computeAMDF(samples, len(samples)-1)
}

func computeAMDF(samples []int16, lags int) Series {
	if lags <= 0 {
		return Series{}
	}

	out := make(Series, lags)
	for k := range out {
		out[k] = amdfAt(samples, k)
	}

	return out
}

// ComputeAMDFParallel computes the same series as ComputeAMDF with the lags
// split over at most workers goroutines. Each goroutine writes a disjoint
// range of the result. ctx is checked between lags.
func ComputeAMDFParallel(ctx context.Context, samples []int16, workers int) (Series, error) {
	return computeAMDFParallel(ctx, samples, len(samples)-1, workers)
}

func computeAMDFParallel(ctx context.Context, samples []int16, lags, workers int) (Series, error) {
	if lags <= 0 {
		return Series{}, nil
	}
	if workers < 1 {
		workers = 1
	}

	out := make(Series, lags)

	// Work per lag shrinks as k grows; keep batches small.
	batch := max(1, lags/(workers*8))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for start := 0; start < lags; start += batch {
		end := min(start+batch, lags)

		g.Go(func() error {
			for k := start; k < end; k++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				out[k] = amdfAt(samples, k)
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("computing AMDF: %w", err)
	}

	return out, nil
}

func amdfAt(samples []int16, k int) float32 {
	n := len(samples) - k

	var sum int64
	for i := range n {
		d := int64(samples[i]) - int64(samples[i+k])
		if d < 0 {
			d = -d
		}
		sum += d
	}

	return float32(float64(sum) / float64(n))
}
