// SPDX-License-Identifier: EPL-2.0

// Package pitch estimates the fundamental frequency of a tone with the
// Average Magnitude Difference Function (AMDF).
//
// For an N sample buffer the AMDF at lag k is the mean absolute difference
// between the signal and a copy of itself shifted by k samples:
//
//	AMDF(k) = 1/(N-k) * sum(|s[n] - s[n+k]|, n = 0 .. N-k-1),  k = 0 .. N-2
//
// A periodic signal lines up with itself every period, so the series dips
// at multiples of the period. The first strict local minimum is taken as
// the fundamental period and converted to a frequency:
//
//	series := pitch.ComputeAMDF(samples)
//	minima := pitch.FindLocalMinima(series)
//	period, err := pitch.EstimatePeriod(minima)
//	if errors.Is(err, pitch.ErrNoPeriodFound) {
//	    // silence, noise or a buffer too short to hold a cycle
//	}
//	hz, _ := pitch.ToFrequencyHz(period, 44100)
//
// Estimate runs the whole chain. Computing the series is O(N²); use
// WithMaxLag to stop at the longest period of interest and WithWorkers to
// spread the lags over several goroutines. Every function is pure and safe
// for concurrent use.
package pitch
