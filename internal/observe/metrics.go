// Package observe provides the simulator's OpenTelemetry metrics, the
// Prometheus exporter bridge and HTTP middleware.
//
// Every Record method is safe to call on a nil *Metrics, so components can
// take an optional instance without guarding each call site.
package observe

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// meterName is the instrumentation scope name used for all metrics.
const meterName = "github.com/tatianab/kira-suspicion"

// Metrics holds all metric instruments for the application.
type Metrics struct {
	// Turns counts accepted player turns. Attribute: action.
	Turns metric.Int64Counter

	// Outcomes counts sessions reaching a terminal location. Attribute: outcome.
	Outcomes metric.Int64Counter

	// NarrationDuration tracks narrator latency, including timeouts.
	NarrationDuration metric.Float64Histogram

	// NarrationFailures counts turns that fell back to offline narration.
	// Attribute: reason (absent, error, timeout).
	NarrationFailures metric.Int64Counter

	// HTTPRequestDuration tracks API request time. Attributes: method, path.
	HTTPRequestDuration metric.Float64Histogram
}

var latencyBuckets = []float64{
	0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 30,
}

// NewMetrics creates the instruments on mp.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.Turns, err = m.Int64Counter("kira.turns",
		metric.WithDescription("Accepted player turns by action label."),
	); err != nil {
		return nil, err
	}
	if met.Outcomes, err = m.Int64Counter("kira.outcomes",
		metric.WithDescription("Sessions that ended, by outcome."),
	); err != nil {
		return nil, err
	}
	if met.NarrationDuration, err = m.Float64Histogram("kira.narration.duration",
		metric.WithDescription("Latency of narration requests."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	if met.NarrationFailures, err = m.Int64Counter("kira.narration.failures",
		metric.WithDescription("Turns narrated by the offline fallback, by reason."),
	); err != nil {
		return nil, err
	}
	if met.HTTPRequestDuration, err = m.Float64Histogram("kira.http.request.duration",
		metric.WithDescription("HTTP request latency by method and path."),
		metric.WithUnit("s"),
	); err != nil {
		return nil, err
	}

	return met, nil
}

var (
	defaultMetrics     *Metrics
	defaultMetricsOnce sync.Once
)

// DefaultMetrics returns a package-level instance built on the global meter
// provider. Call it after InitProvider.
func DefaultMetrics() *Metrics {
	defaultMetricsOnce.Do(func() {
		var err error
		defaultMetrics, err = NewMetrics(otel.GetMeterProvider())
		if err != nil {
			panic("observe: failed to create default metrics: " + err.Error())
		}
	})
	return defaultMetrics
}

// RecordTurn counts one accepted turn.
func (m *Metrics) RecordTurn(ctx context.Context, action string) {
	if m == nil {
		return
	}
	m.Turns.Add(ctx, 1, metric.WithAttributes(attribute.String("action", action)))
}

// RecordOutcome counts a session ending.
func (m *Metrics) RecordOutcome(ctx context.Context, outcome string) {
	if m == nil {
		return
	}
	m.Outcomes.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

// RecordNarrationDuration records one narration attempt's latency.
func (m *Metrics) RecordNarrationDuration(ctx context.Context, d time.Duration) {
	if m == nil {
		return
	}
	m.NarrationDuration.Record(ctx, d.Seconds())
}

// RecordNarrationFailure counts a fallback narration.
func (m *Metrics) RecordNarrationFailure(ctx context.Context, reason string) {
	if m == nil {
		return
	}
	m.NarrationFailures.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
}
