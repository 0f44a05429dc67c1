// Copyright (c) lfdeque contributors. All rights reserved.
// Licensed under the MIT License.

package otdeque_test

import (
	"context"
	"fmt"
	"os"

	"github.com/lfdeque/lfdeque"
	"github.com/lfdeque/lfdeque/otdeque"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/trace"
)

// Example demonstrating how to wrap a Deque with tracing, metrics, and
// logging via otdeque.Instrumented.
func Example_instrumented() {
	// Configure a simple exporter for demonstration. It writes spans to
	// stderr so that they stay out of the output checked below.
	exporter, _ := stdouttrace.New(stdouttrace.WithWriter(os.Stderr), stdouttrace.WithPrettyPrint())
	tp := trace.NewTracerProvider(
		trace.WithSampler(trace.AlwaysSample()),
		trace.WithBatcher(exporter),
	)
	otel.SetTracerProvider(tp)
	defer tp.Shutdown(context.Background())

	// Create a root context with a parent span.
	ctx, rootSpan := otel.Tracer("example").Start(context.Background(), "process-job")
	defer rootSpan.End()

	jobs := otdeque.NewInstrumented(deque.New[int](), "job-queue")

	jobs.PushRight(ctx, 1)
	jobs.PushRight(ctx, 2)
	jobs.PushLeft(ctx, 0)

	for {
		v, ok := jobs.TryPopLeft(ctx)
		if !ok {
			break
		}
		fmt.Println("processed job:", v)
	}

	// Output:
	// processed job: 0
	// processed job: 1
	// processed job: 2
}
