// Package metrics holds the application's Prometheus and OpenTelemetry
// instruments. Prometheus instruments register themselves on the default
// registry; OpenTelemetry instruments go through the global meter provider,
// which the diagnostics server bridges into the same registry.
package metrics

import (
	"context"
	"time"

	"domaincheck/pkg/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// probeDuration tracks WHOIS probe latency, labeled with the verdict the
// probe produced.
var probeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint: gochecknoglobals
	Name:    "domaincheck_probe_duration_seconds",
	Help:    "Duration of WHOIS probes in seconds",
	Buckets: DefaultBuckets,
}, []string{"verdict"})

// probesTotal counts finished probes per verdict.
var probesTotal, _ = otel.Meter("domaincheck").Int64Counter( //nolint: gochecknoglobals
	"domaincheck.probes.total",
	metric.WithDescription("Number of WHOIS probes grouped by verdict"),
)

// RecordProbe records one finished probe in both instruments.
func RecordProbe(ctx context.Context, verdict domain.Verdict, elapsed time.Duration) {
	probeDuration.WithLabelValues(verdict.String()).Observe(elapsed.Seconds())
	probesTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("verdict", verdict.String())))
}
