// SPDX-License-Identifier: EPL-2.0

package pitch

import (
	"context"
	"errors"
	"math"
	"testing"
)

func sine(freq float64, rate, n int, amplitude float64) []int16 {
	out := make([]int16, n)
	for i := range out {
		out[i] = int16(amplitude * math.MaxInt16 * math.Sin(2*math.Pi*freq*float64(i)/float64(rate)))
	}

	return out
}

func TestComputeAMDF_Length(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    int
		want int
	}{
		{0, 0},
		{1, 0},
		{2, 1},
		{8, 7},
		{100, 99},
	}

	for _, tt := range tests {
		if got := len(ComputeAMDF(make([]int16, tt.n))); got != tt.want {
			t.Errorf("len(ComputeAMDF(%d samples)) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestComputeAMDF_ZeroLagIsZero(t *testing.T) {
	t.Parallel()

	inputs := [][]int16{
		{1, 2},
		{math.MinInt16, math.MaxInt16, 0},
		sine(440, 8000, 200, 0.9),
	}

	for _, in := range inputs {
		if got := ComputeAMDF(in)[0]; got != 0 {
			t.Errorf("AMDF(0) = %v, want 0", got)
		}
	}
}

func TestComputeAMDF_SquareWave(t *testing.T) {
	t.Parallel()

	series := ComputeAMDF([]int16{0, 10, 0, 10, 0, 10, 0, 10})
	want := Series{0, 10, 0, 10, 0, 10, 0}

	if len(series) != len(want) {
		t.Fatalf("len = %d, want %d", len(series), len(want))
	}
	for k := range want {
		if series[k] != want[k] {
			t.Errorf("AMDF(%d) = %v, want %v", k, series[k], want[k])
		}
	}
}

func TestComputeAMDF_NormalizedByWindow(t *testing.T) {
	t.Parallel()

	// ramp: |s[n]-s[n+k]| == k for every n, so the mean is exactly k
	ramp := make([]int16, 50)
	for i := range ramp {
		ramp[i] = int16(i)
	}

	for k, v := range ComputeAMDF(ramp) {
		if v != float32(k) {
			t.Errorf("AMDF(%d) = %v, want %d", k, v, k)
		}
	}
}

func TestComputeAMDF_ExtremeValues(t *testing.T) {
	t.Parallel()

	series := ComputeAMDF([]int16{math.MinInt16, math.MaxInt16, math.MinInt16})

	if series[1] != 65535 {
		t.Errorf("AMDF(1) = %v, want 65535", series[1])
	}
}

func TestComputeAMDFParallel_MatchesSequential(t *testing.T) {
	t.Parallel()

	samples := sine(330, 16000, 1500, 0.5)
	want := ComputeAMDF(samples)

	for _, workers := range []int{0, 1, 2, 3, 8, 64} {
		got, err := ComputeAMDFParallel(context.Background(), samples, workers)
		if err != nil {
			t.Fatalf("ComputeAMDFParallel(workers=%d) error = %v", workers, err)
		}

		if len(got) != len(want) {
			t.Fatalf("workers=%d: len = %d, want %d", workers, len(got), len(want))
		}
		for k := range want {
			if got[k] != want[k] {
				t.Fatalf("workers=%d: AMDF(%d) = %v, want %v", workers, k, got[k], want[k])
			}
		}
	}
}

func TestComputeAMDFParallel_Short(t *testing.T) {
	t.Parallel()

	got, err := ComputeAMDFParallel(context.Background(), []int16{7}, 4)
	if err != nil || len(got) != 0 {
		t.Errorf("ComputeAMDFParallel(1 sample) = %v, %v, want empty, nil", got, err)
	}
}

func TestComputeAMDFParallel_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ComputeAMDFParallel(ctx, sine(100, 8000, 2000, 0.5), 4)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ComputeAMDFParallel() error = %v, want context.Canceled", err)
	}
}

func BenchmarkComputeAMDF(b *testing.B) {
	samples := sine(220, 44100, 4410, 0.2)

	for b.Loop() {
		_ = ComputeAMDF(samples)
	}
}

func BenchmarkComputeAMDFParallel(b *testing.B) {
	samples := sine(220, 44100, 4410, 0.2)
	ctx := context.Background()

	for b.Loop() {
		_, _ = ComputeAMDFParallel(ctx, samples, 8)
	}
}
