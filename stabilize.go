// Copyright (c) lfdeque contributors. All rights reserved.
// Licensed under the MIT License.

package deque

// stabilize dispatches to the helper matching a's transient status. Any
// goroutine that observes a non-stable anchor, whether it is the
// pushing goroutine or a completely unrelated caller, runs this to
// completion before proceeding with its own operation. That is what
// makes the deque lock-free: a pusher that stalls between its anchor
// CAS and stabilization never blocks anyone else.
func (d *Deque[T]) stabilize(a *anchor[T]) {
	switch a.status {
	case statusRPush:
		d.stabilizeRight(a)
	case statusLPush:
		d.stabilizeLeft(a)
	case statusStable:
		// Callers only reach here defensively; nothing to do.
	default:
		panic(errAnchorCorrupt)
	}
}

// stabilizeRight repairs the previous right end's outward link after a
// push has published a new right node but not yet linked back to it.
func (d *Deque[T]) stabilizeRight(a *anchor[T]) {
	if d.anchor.Load() != a {
		return
	}

	n := a.right
	p := n.left.Load()
	pnext := p.right.Load()

	if pnext != n {
		// Between loading p and here, a pop could have detached n and a
		// new push could have stabilized a different node into place,
		// leaving p.right already correct for some other node. Re-check
		// the anchor before writing p.right so we never clobber it with
		// a stale n.
		if d.anchor.Load() != a {
			return
		}
		// A failed CAS here is benign: another helper already advanced
		// p.right.
		p.right.CompareAndSwap(pnext, n)
	}

	// A failed CAS here is benign: another helper already marked the
	// anchor stable, or the deque has moved on entirely.
	d.anchor.CompareAndSwap(a, a.withStatus(statusStable))
}

// stabilizeLeft is the mirror of stabilizeRight.
func (d *Deque[T]) stabilizeLeft(a *anchor[T]) {
	if d.anchor.Load() != a {
		return
	}

	n := a.left
	p := n.right.Load()
	pprev := p.left.Load()

	if pprev != n {
		if d.anchor.Load() != a {
			return
		}
		p.left.CompareAndSwap(pprev, n)
	}

	d.anchor.CompareAndSwap(a, a.withStatus(statusStable))
}
