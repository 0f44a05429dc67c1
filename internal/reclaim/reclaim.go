// Copyright (c) lfdeque contributors. All rights reserved.
// Licensed under the MIT License.

// Package reclaim provides epoch-based deferred reclamation for objects
// that may still be reachable through a stale pointer held by another
// goroutine. It is the systems-language stand-in for the tracing
// garbage collector a managed-language implementation of an anchor-based
// deque would otherwise rely on to keep detached nodes alive as long as
// any observer still references them.
//
// A caller brackets each operation that may load a stale reference with
// Enter and Guard.Exit, then hands detached objects to Retire. Retire's
// free callback runs only once every guard that was active at the
// moment of retirement has exited, which is the point past which no
// goroutine can still be holding a loaded reference to the retired
// object.
package reclaim

import (
	"sync"
	"sync/atomic"

	"github.com/addrummond/heap"
	"github.com/lfdeque/lfdeque/internal/cerr"
	"github.com/lfdeque/lfdeque/internal/retireq"
)

const errGuardExitedTwice = cerr.Error("reclaim: guard exited twice")

// inactiveEpoch marks a slot that is not currently pinning an epoch.
const inactiveEpoch = ^uint64(0)

// slot is a per-goroutine registration in the reclaimer's registry.
// Slots are never removed once registered; they are recycled through a
// sync.Pool and distinguished as active or inactive by their epoch
// field so that the registry can be scanned without coordinating with
// goroutines that are merely holding a slot between calls.
type slot struct {
	epoch atomic.Uint64
}

// Guard pins the epoch observed at Enter until Exit. Objects retired
// while a guard is active may not be freed until that guard has exited.
type Guard struct {
	r      *Reclaimer
	s      *slot
	exited atomic.Bool
}

// Exit releases the guard's pin. Exit must be called exactly once,
// typically via defer immediately after Enter.
func (g *Guard) Exit() {
	if !g.exited.CompareAndSwap(false, true) {
		panic(errGuardExitedTwice)
	}
	g.s.epoch.Store(inactiveEpoch)
	g.r.slotPool.Put(g.s)
}

type retirement struct {
	epoch uint64
	free  func()
}

func (a *retirement) Cmp(b *retirement) int {
	switch {
	case a.epoch < b.epoch:
		return -1
	case a.epoch > b.epoch:
		return 1
	default:
		return 0
	}
}

// Reclaimer tracks active epochs across goroutines and defers freeing
// retired objects until no active guard could still observe them.
type Reclaimer struct {
	epoch atomic.Uint64

	slotPool sync.Pool
	slotsMu  sync.Mutex
	slots    []*slot

	incoming retireq.Queue[retirement]

	sweepMu sync.Mutex
	pending heap.Heap[retirement, heap.Min]
}

// New returns a ready-to-use Reclaimer.
func New() *Reclaimer {
	r := &Reclaimer{}
	r.slotPool.New = func() any {
		s := &slot{}
		r.slotsMu.Lock()
		r.slots = append(r.slots, s)
		r.slotsMu.Unlock()
		return s
	}
	r.incoming.Init()
	return r
}

// Enter pins the reclaimer's current epoch for the calling goroutine.
// Call Enter before the first load of a pointer that might be
// concurrently retired, and call the returned Guard's Exit on return.
func (r *Reclaimer) Enter() *Guard {
	s, _ := r.slotPool.Get().(*slot)
	s.epoch.Store(r.epoch.Load())
	return &Guard{r: r, s: s}
}

// Retire schedules free to run once every guard active at the moment of
// the call has exited. free must not block and should do no more than
// return the retired object's storage to a pool or drop its last
// reference, e.g. Retire(func() { pool.put(node) }).
func (r *Reclaimer) Retire(free func()) {
	epoch := r.epoch.Add(1) - 1
	r.incoming.PushBack(retirement{epoch: epoch, free: free})
	r.sweep()
}

// minActiveEpoch returns the minimum epoch pinned by any currently
// active guard, or inactiveEpoch if none are active.
func (r *Reclaimer) minActiveEpoch() uint64 {
	r.slotsMu.Lock()
	defer r.slotsMu.Unlock()
	min := inactiveEpoch
	for _, s := range r.slots {
		if e := s.epoch.Load(); e != inactiveEpoch && e < min {
			min = e
		}
	}
	return min
}

// sweep drains newly retired objects into the priority queue ordered by
// retirement epoch, then frees everything at the front that is older
// than every currently active guard. It is always safe to call sweep
// more often than strictly necessary; it is never required to call it
// at all for correctness of the deque above, only for bounding memory
// growth.
func (r *Reclaimer) sweep() {
	if !r.sweepMu.TryLock() {
		// Another goroutine is already sweeping; it will pick up what
		// this call would have drained.
		return
	}
	defer r.sweepMu.Unlock()

	for {
		item, ok := r.incoming.PopFront()
		if !ok {
			break
		}
		heap.PushOrderable(&r.pending, item)
	}

	min := r.minActiveEpoch()
	for {
		item, ok := heap.Peek(&r.pending)
		if !ok || item.epoch >= min {
			break
		}
		heap.PopOrderable(&r.pending)
		item.free()
	}
}
