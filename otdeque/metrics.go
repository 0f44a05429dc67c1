// Copyright (c) lfdeque contributors. All rights reserved.
// Licensed under the MIT License.

package otdeque

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
)

// MetricsPush adds count and duration metrics to a push operation.
func MetricsPush[T any](
	metricName string,
	push func(ctx context.Context, v T),
) func(ctx context.Context, v T) {
	meter := otel.GetMeterProvider().Meter("otdeque")
	pushCounter, _ := meter.Int64Counter(metricName + ".count")
	pushDuration, _ := meter.Float64Histogram(metricName + ".duration")

	return func(ctx context.Context, v T) {
		startTime := time.Now()

		pushCounter.Add(ctx, 1)
		push(ctx, v)

		duration := time.Since(startTime).Seconds()
		pushDuration.Record(ctx, duration)
	}
}

// MetricsPop adds count, duration, and miss metrics to a pop operation.
// A miss (pop observing an empty deque) is not an error, so it gets its
// own counter rather than sharing an "errors" series with real failures.
func MetricsPop[T any](
	metricName string,
	pop func(ctx context.Context) (T, bool),
) func(ctx context.Context) (T, bool) {
	meter := otel.GetMeterProvider().Meter("otdeque")
	popCounter, _ := meter.Int64Counter(metricName + ".count")
	popDuration, _ := meter.Float64Histogram(metricName + ".duration")
	missCounter, _ := meter.Int64Counter(metricName + ".misses")

	return func(ctx context.Context) (T, bool) {
		startTime := time.Now()

		popCounter.Add(ctx, 1)
		v, ok := pop(ctx)

		duration := time.Since(startTime).Seconds()
		popDuration.Record(ctx, duration)

		if !ok {
			missCounter.Add(ctx, 1)
		}

		return v, ok
	}
}
