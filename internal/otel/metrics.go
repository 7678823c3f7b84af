// SPDX-License-Identifier: EPL-2.0

package otel

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/ik5/wavemaker"

// Tracer returns the tracer for the tool's spans.
func Tracer() trace.Tracer {
	return otel.Tracer(instrumentationName)
}

// AnalysisMetrics records pitch analysis outcomes.
type AnalysisMetrics struct {
	frequency metric.Float64Histogram
	noPitch   metric.Int64Counter
}

// NewAnalysisMetrics creates the instruments on the global meter provider,
// so it must run after Setup.
func NewAnalysisMetrics() (*AnalysisMetrics, error) {
	meter := otel.Meter(instrumentationName)

	frequency, err := meter.Float64Histogram("wavemaker.analysis.frequency",
		metric.WithDescription("Estimated fundamental frequency"),
		metric.WithUnit("Hz"),
	)
	if err != nil {
		return nil, err
	}

	noPitch, err := meter.Int64Counter("wavemaker.analysis.no_pitch",
		metric.WithDescription("Inputs without a discernible period"),
	)
	if err != nil {
		return nil, err
	}

	return &AnalysisMetrics{frequency: frequency, noPitch: noPitch}, nil
}

func (m *AnalysisMetrics) RecordFrequency(ctx context.Context, format string, hz float64) {
	m.frequency.Record(ctx, hz, metric.WithAttributes(attribute.String("format", format)))
}

func (m *AnalysisMetrics) RecordNoPitch(ctx context.Context, format string) {
	m.noPitch.Add(ctx, 1, metric.WithAttributes(attribute.String("format", format)))
}
