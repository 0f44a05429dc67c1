// Copyright (c) lfdeque contributors. All rights reserved.
// Licensed under the MIT License.

package otdeque

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// TracedPush wraps a push operation in a span named after it. The span
// carries no result to propagate — a push never fails and returns
// nothing — so, unlike the teacher's task/gather tracing, there is no
// companion propagation step.
func TracedPush[T any](
	operationName string,
	push func(ctx context.Context, v T),
) func(ctx context.Context, v T) {
	return func(ctx context.Context, v T) {
		tracer := otel.Tracer("otdeque")
		ctx, span := tracer.Start(ctx, operationName)
		defer span.End()

		push(ctx, v)
	}
}

// TracedPop wraps a pop operation in a span named after it, recording
// whether the call hit or observed the deque empty.
func TracedPop[T any](
	operationName string,
	pop func(ctx context.Context) (T, bool),
) func(ctx context.Context) (T, bool) {
	return func(ctx context.Context) (T, bool) {
		tracer := otel.Tracer("otdeque")
		ctx, span := tracer.Start(ctx, operationName)
		defer span.End()

		v, ok := pop(ctx)
		span.SetAttributes(attribute.Bool("otdeque.hit", ok))
		return v, ok
	}
}
