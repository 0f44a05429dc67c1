// Copyright (c) lfdeque contributors. All rights reserved.
// Licensed under the MIT License.

// Package otdeque wraps a [deque.Deque] with structured logging,
// metrics, and tracing for operators who want visibility into
// push/pop/stabilize activity without touching the hot path of the
// core package. None of it participates in linearization: every method
// here does nothing but bracket the underlying lock-free call with
// observability, exactly as the teacher's instrumentation wraps a
// psg.TaskFunc without altering scheduling semantics.
package otdeque

import (
	"context"

	"github.com/lfdeque/lfdeque"
)

// Instrumented wraps a *deque.Deque[T], exposing the same four
// operations plus IsEmpty with an added context.Context parameter used
// only for span and log correlation. The underlying deque operations
// remain non-blocking and context-free; ctx is never consulted for
// cancellation or deadlines.
type Instrumented[T any] struct {
	d *deque.Deque[T]

	pushLeft  func(ctx context.Context, v T)
	pushRight func(ctx context.Context, v T)
	popLeft   func(ctx context.Context) (T, bool)
	popRight  func(ctx context.Context) (T, bool)
}

// NewInstrumented wraps d, composing logging, metrics, and tracing
// around each of its four operations. name identifies this deque in
// emitted spans, metrics, and log lines, e.g. "job-queue".
func NewInstrumented[T any](d *deque.Deque[T], name string) *Instrumented[T] {
	instrument := func(op string, push func(ctx context.Context, v T)) func(context.Context, T) {
		// Apply wrappers inside-out: logging first, then metrics, then
		// the outermost span.
		return TracedPush(op, MetricsPush(op, LoggedPush(op, push)))
	}
	instrumentPop := func(op string, pop func(ctx context.Context) (T, bool)) func(context.Context) (T, bool) {
		return TracedPop(op, MetricsPop(op, LoggedPop(op, pop)))
	}

	return &Instrumented[T]{
		d: d,
		pushLeft: instrument(name+".push_left", func(_ context.Context, v T) {
			d.PushLeft(v)
		}),
		pushRight: instrument(name+".push_right", func(_ context.Context, v T) {
			d.PushRight(v)
		}),
		popLeft: instrumentPop(name+".pop_left", func(_ context.Context) (T, bool) {
			return d.TryPopLeft()
		}),
		popRight: instrumentPop(name+".pop_right", func(_ context.Context) (T, bool) {
			return d.TryPopRight()
		}),
	}
}

// PushLeft appends v at the left end. See [deque.Deque.PushLeft].
func (i *Instrumented[T]) PushLeft(ctx context.Context, v T) {
	i.pushLeft(ctx, v)
}

// PushRight appends v at the right end. See [deque.Deque.PushRight].
func (i *Instrumented[T]) PushRight(ctx context.Context, v T) {
	i.pushRight(ctx, v)
}

// TryPopLeft removes and returns the leftmost value. See
// [deque.Deque.TryPopLeft].
func (i *Instrumented[T]) TryPopLeft(ctx context.Context) (T, bool) {
	return i.popLeft(ctx)
}

// TryPopRight removes and returns the rightmost value. See
// [deque.Deque.TryPopRight].
func (i *Instrumented[T]) TryPopRight(ctx context.Context) (T, bool) {
	return i.popRight(ctx)
}

// IsEmpty reports whether the wrapped deque was empty at some instant
// during the call. It is not instrumented beyond the underlying racy
// snapshot: a best-effort read carries nothing worth a span.
func (i *Instrumented[T]) IsEmpty(context.Context) bool {
	return i.d.IsEmpty()
}
