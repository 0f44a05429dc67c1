// Copyright (c) lfdeque contributors. All rights reserved.
// Licensed under the MIT License.

// Package deque provides a lock-free concurrent double-ended queue.
// Any number of goroutines may push and pop at either end concurrently
// with no mutual-exclusion primitive on the hot path.
//
// Correctness rests on a single atomic pointer, the anchor, that
// publishes both end pointers and a short-lived status flag together.
// A push is two phases: publish a new end node with a CAS on the
// anchor, then stabilize the chain so the previous end's outward link
// points at the new node. Any goroutine that observes a non-stable
// anchor helps finish the stabilization before proceeding with its own
// operation, which is what makes the deque lock-free rather than merely
// non-blocking for the pusher.
//
// Popped nodes are not reused immediately; they are handed to
// internal/reclaim, which returns them to the node pool only once no
// goroutine can still hold a loaded reference to them. Superseded
// anchors are left to the garbage collector.
//
// Deque does not support iteration, size queries with cross-goroutine
// consistency, fairness between ends, or strict FIFO ordering across
// ends. See the package-level examples in the otdeque submodule for
// structured logging, metrics, and tracing around a Deque.
package deque
