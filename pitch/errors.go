// SPDX-License-Identifier: EPL-2.0

package pitch

import "errors"

var (
	// ErrNoPeriodFound means the AMDF series has no local minimum: the input
	// is silent, noisy, monotonic or too short. It is an expected outcome.
	ErrNoPeriodFound = errors.New("no period found")
	// ErrInvalidPeriod is returned when converting a non-positive period.
	ErrInvalidPeriod = errors.New("period must be positive")
)
