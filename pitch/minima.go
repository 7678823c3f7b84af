// SPDX-License-Identifier: EPL-2.0

package pitch

// Minimum is a candidate fundamental period: a lag whose AMDF value is
// strictly lower than both neighbours.
type Minimum struct {
	Position int
	Value    float32
}

// FindLocalMinima returns every strict local minimum of series in lag
// order. Lag 0 is never a candidate, and neither are the last two lags:
// the search stops at len(series)-3.
func FindLocalMinima(series Series) []Minimum {
	var minima []Minimum

	for i := 1; i <= len(series)-3; i++ {
		if series[i] < series[i-1] && series[i] < series[i+1] {
			minima = append(minima, Minimum{Position: i, Value: series[i]})
		}
	}

	return minima
}
