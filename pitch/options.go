// SPDX-License-Identifier: EPL-2.0

package pitch

const DefaultWorkers = 1

type options struct {
	workers int
	maxLag  int
}

// Option configures Estimate.
type Option func(*options)

// WithWorkers spreads the AMDF over n goroutines. Values below 1 mean 1.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithMaxLag limits the AMDF to lags 0 .. n-1, bounding the cost of long
// buffers. The longest detectable period is then n-3 samples. Zero or
// negative means every lag.
func WithMaxLag(n int) Option {
	return func(o *options) {
		o.maxLag = n
	}
}

func defaultOptions() options {
	return options{
		workers: DefaultWorkers,
	}
}
