// Package workers runs handlers on a fixed set of goroutines, routing each
// message by the hash of its partition key so that messages sharing a key are
// handled in dispatch order by the same goroutine.
package workers

import (
	"context"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/on-the-ground/sieve_ive_go/shared/log"
)

type Partitionable interface {
	PartitionKey() string
}

// PartitionedQueue is a set of single-goroutine queues.
// Dispatch may be called from several goroutines; Close must be called once,
// after the last Dispatch.
type PartitionedQueue[T Partitionable] struct {
	channels []chan T
	wg       sync.WaitGroup
}

// NewPartitionedQueue starts numWorkers goroutines, each draining its own
// channel of bufferSize messages through handleFn. Non-positive sizes fall back
// to 1 and 0 respectively.
func NewPartitionedQueue[T Partitionable](
	ctx context.Context,
	numWorkers, bufferSize int,
	handleFn func(context.Context, T),
) *PartitionedQueue[T] {
	if numWorkers <= 0 {
		numWorkers = 1
	}
	if bufferSize < 0 {
		bufferSize = 0
	}

	q := &PartitionedQueue[T]{channels: make([]chan T, numWorkers)}
	for i := range q.channels {
		ch := make(chan T, bufferSize)
		q.channels[i] = ch
		q.wg.Add(1)
		go func() {
			defer q.wg.Done()
			for msg := range ch {
				handle(ctx, handleFn, msg)
			}
		}()
	}
	return q
}

func handle[T Partitionable](ctx context.Context, handleFn func(context.Context, T), msg T) {
	defer func() {
		if r := recover(); r != nil {
			log.Log(ctx, log.LogError, "panic in worker", map[string]interface{}{
				"partition": msg.PartitionKey(),
				"error":     r,
			})
		}
	}()
	handleFn(ctx, msg)
}

// Dispatch enqueues msg on the worker owning its partition. It reports false
// when ctx is done before the message is accepted.
func (q *PartitionedQueue[T]) Dispatch(ctx context.Context, msg T) bool {
	if ctx.Err() != nil {
		return false
	}
	select {
	case <-ctx.Done():
		return false
	case q.channels[indexOf(msg.PartitionKey(), len(q.channels))] <- msg:
		return true
	}
}

// Close stops accepting messages and waits until every queued message has
// been handled.
func (q *PartitionedQueue[T]) Close() {
	for _, ch := range q.channels {
		close(ch)
	}
	q.wg.Wait()
}

func indexOf(key string, numChs int) int {
	if numChs == 1 {
		return 0
	}
	return int(xxhash.Sum64String(key) % uint64(numChs))
}
