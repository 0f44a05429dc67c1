// Copyright (c) lfdeque contributors. All rights reserved.
// Licensed under the MIT License.

package retireq_test

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/lfdeque/lfdeque/internal/retireq"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestQueueBasicFunctionality(t *testing.T) {
	var q retireq.Queue[int]
	q.Init()

	_, ok := q.PopFront()
	require.False(t, ok)

	q.PushBack(1)
	q.PushBack(2)
	q.PushBack(3)

	val, ok := q.PopFront()
	require.True(t, ok)
	require.Equal(t, 1, val)

	val, ok = q.PopFront()
	require.True(t, ok)
	require.Equal(t, 2, val)

	val, ok = q.PopFront()
	require.True(t, ok)
	require.Equal(t, 3, val)

	_, ok = q.PopFront()
	require.False(t, ok)
}

func TestQueueWithRapid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var q retireq.Queue[int]
		q.Init()

		var model []int

		t.Repeat(map[string]func(*rapid.T){
			"pushBack": func(t *rapid.T) {
				val := rapid.Int().Draw(t, "value")
				q.PushBack(val)
				model = append(model, val)
			},
			"popFront": func(t *rapid.T) {
				if len(model) == 0 {
					t.Skip("queue is empty, nothing to pop")
				}
				expected := model[0]
				model = model[1:]

				val, ok := q.PopFront()
				require.True(t, ok, "PopFront failed on non-empty queue")
				require.Equal(t, expected, val, "PopFront returned wrong value")
			},
			"": func(t *rapid.T) {
				if len(model) == 0 {
					_, ok := q.PopFront()
					require.False(t, ok, "PopFront should fail on empty queue")
				}
			},
		})
	})
}

func TestQueueConcurrency(t *testing.T) {
	var q retireq.Queue[int]
	q.Init()
	chk := require.New(t)

	numWriters := max(1, runtime.NumCPU()/2)
	numReaders := max(1, runtime.NumCPU()/2)
	iterations := 20_000
	if testing.Short() {
		iterations /= 4
	}

	var received sync.Map // int -> struct{}
	var receivedCount atomic.Int64

	var writerWg sync.WaitGroup
	writerWg.Add(numWriters)
	for id := 0; id < numWriters; id++ {
		id := id
		go func() {
			defer writerWg.Done()
			base := id * iterations
			for i := 0; i < iterations; i++ {
				q.PushBack(base + i + 1)
			}
		}()
	}

	var writersDone atomic.Bool
	var readerWg sync.WaitGroup
	readerWg.Add(numReaders)
	for i := 0; i < numReaders; i++ {
		go func() {
			defer readerWg.Done()
			for {
				v, ok := q.PopFront()
				if !ok {
					if writersDone.Load() {
						return
					}
					continue
				}
				if _, dup := received.LoadOrStore(v, struct{}{}); dup {
					panic("value received twice")
				}
				receivedCount.Add(1)
			}
		}()
	}

	writerWg.Wait()
	writersDone.Store(true)
	readerWg.Wait()

	chk.Equal(int64(numWriters*iterations), receivedCount.Load())

	_, ok := q.PopFront()
	chk.False(ok)
}
