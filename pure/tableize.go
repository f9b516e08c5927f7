// Package pure memoizes pure functions.
//
// Only wrap functions whose result depends on nothing but their argument:
// cached results are shared between callers, possibly across goroutines, so
// they must also never be mutated after they are returned.
package pure

// Tableize wraps pureFn with a bounded memo of at most 2*maxTableSize results.
// Concurrent first calls with the same key may each evaluate pureFn; one of
// the equal results is kept.
func Tableize[K comparable, V any](pureFn func(K) V, maxTableSize uint32) func(K) V {
	memo := NewTable[K, V](maxTableSize)
	return func(key K) V {
		v, ok := memo.Load(key)
		if !ok {
			v = pureFn(key)
			memo.Store(key, v)
		}
		return v
	}
}
