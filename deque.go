// Copyright (c) lfdeque contributors. All rights reserved.
// Licensed under the MIT License.

package deque

import (
	"sync/atomic"

	"github.com/lfdeque/lfdeque/internal/reclaim"
)

// Deque is a lock-free concurrent double-ended queue. The zero value is
// not ready for use; call [New] to construct one.
type Deque[T any] struct {
	anchor    atomic.Pointer[anchor[T]]
	pool      nodePool[T]
	reclaimer *reclaim.Reclaimer
}

// New returns an empty, ready-to-use Deque.
func New[T any]() *Deque[T] {
	d := &Deque[T]{reclaimer: reclaim.New()}
	d.anchor.Store(emptyAnchor[T]())
	return d
}

// PushRight appends item at the right end. It never fails and returns
// once item is linearized into the deque; stabilization of the chain
// behind it may complete on this call or be finished later by a helper.
func (d *Deque[T]) PushRight(item T) {
	g := d.reclaimer.Enter()
	defer g.Exit()

	n := newNode(&d.pool, item)
	for {
		a := d.anchor.Load()
		switch {
		case a.isEmpty():
			next := &anchor[T]{left: n, right: n, status: a.status}
			if d.anchor.CompareAndSwap(a, next) {
				return
			}
		case a.status == statusStable:
			n.left.Store(a.right)
			next := &anchor[T]{left: a.left, right: n, status: statusRPush}
			if d.anchor.CompareAndSwap(a, next) {
				d.stabilizeRight(next)
				return
			}
		default:
			d.stabilize(a)
		}
	}
}

// PushLeft is the mirror of PushRight.
func (d *Deque[T]) PushLeft(item T) {
	g := d.reclaimer.Enter()
	defer g.Exit()

	n := newNode(&d.pool, item)
	for {
		a := d.anchor.Load()
		switch {
		case a.isEmpty():
			next := &anchor[T]{left: n, right: n, status: a.status}
			if d.anchor.CompareAndSwap(a, next) {
				return
			}
		case a.status == statusStable:
			n.right.Store(a.left)
			next := &anchor[T]{left: n, right: a.right, status: statusLPush}
			if d.anchor.CompareAndSwap(a, next) {
				d.stabilizeLeft(next)
				return
			}
		default:
			d.stabilize(a)
		}
	}
}

// TryPopRight removes and returns the rightmost value, or reports false
// if the deque was observed empty.
func (d *Deque[T]) TryPopRight() (T, bool) {
	g := d.reclaimer.Enter()
	defer g.Exit()

	for {
		a := d.anchor.Load()
		if a.isEmpty() {
			var zero T
			return zero, false
		}
		if a.status != statusStable {
			d.stabilize(a)
			continue
		}
		if a.right == a.left {
			if d.anchor.CompareAndSwap(a, emptyAnchor[T]()) {
				v := a.right.value
				d.retireNode(a.right)
				return v, true
			}
			continue
		}
		p := a.right.left.Load()
		next := &anchor[T]{left: a.left, right: p, status: statusStable}
		if d.anchor.CompareAndSwap(a, next) {
			v := a.right.value
			d.retireNode(a.right)
			return v, true
		}
	}
}

// TryPopLeft is the mirror of TryPopRight.
func (d *Deque[T]) TryPopLeft() (T, bool) {
	g := d.reclaimer.Enter()
	defer g.Exit()

	for {
		a := d.anchor.Load()
		if a.isEmpty() {
			var zero T
			return zero, false
		}
		if a.status != statusStable {
			d.stabilize(a)
			continue
		}
		if a.left == a.right {
			if d.anchor.CompareAndSwap(a, emptyAnchor[T]()) {
				v := a.left.value
				d.retireNode(a.left)
				return v, true
			}
			continue
		}
		p := a.left.right.Load()
		next := &anchor[T]{left: p, right: a.right, status: statusStable}
		if d.anchor.CompareAndSwap(a, next) {
			v := a.left.value
			d.retireNode(a.left)
			return v, true
		}
	}
}

// IsEmpty reports whether the deque was empty at some instant during
// the call. It is a best-effort, racy snapshot: by the time it returns,
// a concurrent push or pop may already have changed the answer.
//
// Only the left end is tested; by the emptiness-symmetry invariant
// (anchor.left == nil iff anchor.right == nil) testing right would
// always agree.
func (d *Deque[T]) IsEmpty() bool {
	g := d.reclaimer.Enter()
	defer g.Exit()
	return d.anchor.Load().isEmpty()
}

// retireNode hands a just-detached node to the reclaimer so its storage
// can be returned to the pool once no guard that was active at
// detachment time can still be holding a stale reference to it.
func (d *Deque[T]) retireNode(n *node[T]) {
	d.reclaimer.Retire(func() {
		d.pool.put(n)
	})
}
