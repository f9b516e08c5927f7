// Package seqs provides small generic combinators over iter.Seq.
//
// Every combinator is lazy: nothing is evaluated until the returned sequence
// is ranged over, and early termination of the consumer stops the producer.
package seqs

import "iter"

// Range yields lo, lo+1, ..., hi-1.
func Range(lo, hi int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := lo; i < hi; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// Once yields v exactly once.
func Once[T any](v T) iter.Seq[T] {
	return func(yield func(T) bool) {
		yield(v)
	}
}

// Concat yields every element of each sequence in turn.
func Concat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for v := range seq {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// StridedRefs yields pointers to s[0], s[step], s[2*step], ... allowing
// in-place updates. It panics if step is not positive.
func StridedRefs[T any](s []T, step int) iter.Seq[*T] {
	if step <= 0 {
		panic("seqs.StridedRefs: step must be positive")
	}
	return func(yield func(*T) bool) {
		for i := 0; i < len(s); i += step {
			if !yield(&s[i]) {
				return
			}
		}
	}
}

// Drop skips the first n elements of seq.
func Drop[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		i := 0
		for v := range seq {
			if i < n {
				i++
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// FilterMap2 maps every pair of seq through f and keeps the results for which
// f reports true.
func FilterMap2[K, V, R any](seq iter.Seq2[K, V], f func(K, V) (R, bool)) iter.Seq[R] {
	return func(yield func(R) bool) {
		for k, v := range seq {
			if r, ok := f(k, v); ok && !yield(r) {
				return
			}
		}
	}
}

// Fold threads acc through f for every element of seq.
func Fold[T, A any](seq iter.Seq[T], acc A, f func(A, T) A) A {
	for v := range seq {
		acc = f(acc, v)
	}
	return acc
}

// ForEach calls f for every element of seq.
func ForEach[T any](seq iter.Seq[T], f func(T)) {
	for v := range seq {
		f(v)
	}
}

// First returns the first element of seq, stopping the producer right after.
func First[T any](seq iter.Seq[T]) (first T, ok bool) {
	for v := range seq {
		return v, true
	}
	return
}

// Last consumes seq and returns its final element.
func Last[T any](seq iter.Seq[T]) (last T, ok bool) {
	for v := range seq {
		last, ok = v, true
	}
	return
}

// Any reports whether some element satisfies pred. It stops at the first hit.
func Any[T any](seq iter.Seq[T], pred func(T) bool) bool {
	for v := range seq {
		if pred(v) {
			return true
		}
	}
	return false
}

// Count consumes seq and returns the number of elements.
func Count[T any](seq iter.Seq[T]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}
