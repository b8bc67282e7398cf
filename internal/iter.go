package internal

import (
	"iter"
)

// IterSeqConcat concatenates multiple iterators into a single iterator sequence.
func IterSeqConcat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for val := range seq {
				if !yield(val) {
					return // Stop if the consumer stops
				}
			}
		}
	}
}

// IterSeqUnique yields only the first occurrence of each value of seq.
func IterSeqUnique[T comparable](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		seen := map[T]struct{}{}
		for val := range seq {
			if _, ok := seen[val]; ok {
				continue
			}
			seen[val] = struct{}{}
			if !yield(val) {
				return
			}
		}
	}
}
