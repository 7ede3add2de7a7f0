package search

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Package-level tracer and meter for search operations.
var (
	tracer = otel.Tracer("github.com/pdrpinto/search")
	meter  = otel.Meter("github.com/pdrpinto/search")
)

var (
	searchLatency  metric.Float64Histogram
	searchTotal    metric.Int64Counter
	searchExpanded metric.Int64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the instruments. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		searchLatency, err = meter.Float64Histogram(
			"search_duration_seconds",
			metric.WithDescription("Duration of search runs"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		searchTotal, err = meter.Int64Counter(
			"search_total",
			metric.WithDescription("Total number of search runs"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		searchExpanded, err = meter.Int64Histogram(
			"search_expanded_nodes",
			metric.WithDescription("Number of states expanded per search"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

func recordSearchMetrics(ctx context.Context, strategy Strategy, stats Stats, err error) {
	if initErr := initMetrics(); initErr != nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("strategy", strategy.String()),
		attribute.Bool("found", stats.Found),
		attribute.Bool("error", err != nil),
	)
	searchLatency.Record(ctx, stats.Duration.Seconds(), attrs)
	searchTotal.Add(ctx, 1, attrs)
	searchExpanded.Record(ctx, int64(stats.Expanded), attrs)
}

func startSearchSpan(ctx context.Context, strategy Strategy) (context.Context, trace.Span) {
	return tracer.Start(ctx, "search.Solve",
		trace.WithAttributes(
			attribute.String("search.strategy", strategy.String()),
		),
	)
}

func setSearchSpanResult(span trace.Span, stats Stats, err error) {
	span.SetAttributes(
		attribute.Int("search.expanded", stats.Expanded),
		attribute.Int("search.generated", stats.Generated),
		attribute.Bool("search.found", stats.Found),
		attribute.Float64("search.cost", stats.Cost),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}
