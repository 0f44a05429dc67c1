// Copyright (c) lfdeque contributors. All rights reserved.
// Licensed under the MIT License.

package otdeque

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// LoggedPush adds structured logging to a push operation. Pushes never
// fail, so there is no error-level branch to take, only start/complete
// at debug level.
func LoggedPush[T any](
	operationName string,
	push func(ctx context.Context, v T),
) func(ctx context.Context, v T) {
	return func(ctx context.Context, v T) {
		logger := zap.L()

		logger.Debug("starting push",
			zap.String("operation", operationName),
			zap.String("component", "otdeque"))

		startTime := time.Now()
		push(ctx, v)
		duration := time.Since(startTime)

		logger.Debug("push completed",
			zap.String("operation", operationName),
			zap.String("component", "otdeque"),
			zap.Duration("duration", duration))
	}
}

// LoggedPop adds structured logging to a pop operation. An empty result
// is not an error per the deque's contract, so a miss is logged at the
// same debug level as a hit, distinguished by the "hit" field.
func LoggedPop[T any](
	operationName string,
	pop func(ctx context.Context) (T, bool),
) func(ctx context.Context) (T, bool) {
	return func(ctx context.Context) (T, bool) {
		logger := zap.L()

		logger.Debug("starting pop",
			zap.String("operation", operationName),
			zap.String("component", "otdeque"))

		startTime := time.Now()
		v, ok := pop(ctx)
		duration := time.Since(startTime)

		logger.Debug("pop completed",
			zap.String("operation", operationName),
			zap.String("component", "otdeque"),
			zap.Duration("duration", duration),
			zap.Bool("hit", ok))

		return v, ok
	}
}
