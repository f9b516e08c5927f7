package pure

import (
	"sync"
	"sync/atomic"
)

// Table is a bounded memo safe for concurrent use.
//
// Entries live in two generations. Stores go to the head generation; once it
// holds maxSize entries the generations swap and the new head is cleared, so
// at most 2*maxSize entries are retained and recently stored values survive
// one rotation.
type Table[K comparable, V any] struct {
	mu      sync.RWMutex
	memos   [2]*sync.Map
	headIdx int
	size    atomic.Uint32
	maxSize uint32
}

func NewTable[K comparable, V any](maxSize uint32) *Table[K, V] {
	if maxSize == 0 {
		panic("maxSize should be greater than 0")
	}
	return &Table[K, V]{
		memos:   [2]*sync.Map{{}, {}},
		maxSize: maxSize,
	}
}

func (t *Table[K, V]) Load(key K) (V, bool) {
	t.mu.RLock()
	head, tail := t.memos[t.headIdx], t.memos[1-t.headIdx]
	t.mu.RUnlock()

	v, ok := head.Load(key)
	if !ok {
		if v, ok = tail.Load(key); !ok {
			var zero V
			return zero, false
		}
	}
	return v.(V), true
}

func (t *Table[K, V]) Store(key K, value V) {
	t.mu.Lock()
	if t.size.Load() >= t.maxSize {
		t.headIdx = 1 - t.headIdx
		t.memos[t.headIdx] = &sync.Map{}
		t.size.Store(0)
	}
	head := t.memos[t.headIdx]
	t.mu.Unlock()

	if _, loaded := head.Swap(key, value); !loaded {
		t.size.Add(1)
	}
}
