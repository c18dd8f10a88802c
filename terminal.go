package goranges

import "errors"

// ConsumerFunc consumes element elem.
// The index is the 0-based index of elem, in the order produced by the view.
type ConsumerFunc[T any] func(elem T, index uint64)

// AccumulatorFunc folds element elem into the accumulator acc, returning acc, or a new accumulator.
// The index is the 0-based index of elem, in the order produced by the view.
// Returning an error stops the reduction.
type AccumulatorFunc[T any, A any] func(elem T, index uint64, acc A) (A, error)

// ErrShortCircuit is a generic error used by accumulators to stop a reduction early without failing it.
var ErrShortCircuit = errors.New("short circuit")

// Each calls each for each element of view, in order.
// view must be finite.
func Each[T any](view View[T], each ConsumerFunc[T]) {
	index := uint64(0)

	for cur := view.Start(); !cur.Equal(view.end); cur.Advance() {
		each(cur.Current(), index)
		index++
	}
}

// Reduce calls reduce for each element of view, folding it into accumulator acc, returning the final accumulator.
// If reduce returns an error, Reduce stops and returns the accumulator returned along with the error.
// ErrShortCircuit is not reported as an error.
func Reduce[T any, A any](view View[T], acc A, reduce AccumulatorFunc[T, A]) (A, error) {
	index := uint64(0)

	for cur := view.Start(); !cur.Equal(view.end); cur.Advance() {
		var err error

		acc, err = reduce(cur.Current(), index, acc)
		if err != nil {
			if errors.Is(err, ErrShortCircuit) {
				err = nil
			}

			return acc, err
		}

		index++
	}

	return acc, nil
}

// AnyMatch returns true as soon as pred returns true for an element of view, that is, an element matches.
// Elements after the first match are not read.
func AnyMatch[T any](view View[T], pred PredicateFunc[T]) bool {
	anyMatch, _ := Reduce(view, false, func(elem T, _ uint64, _ bool) (bool, error) {
		if !pred(elem) {
			return false, nil
		}

		return true, ErrShortCircuit
	})

	return anyMatch
}

// AllMatch returns true if pred returns true for all elements of view, that is, all elements match.
// Elements after the first mismatch are not read.
func AllMatch[T any](view View[T], pred PredicateFunc[T]) bool {
	allMatch, _ := Reduce(view, true, func(elem T, _ uint64, _ bool) (bool, error) {
		if pred(elem) {
			return true, nil
		}

		return false, ErrShortCircuit
	})

	return allMatch
}

// Count returns the number of elements of view.
// Elements are not read unless an adaptor needs to read them to decide membership, as Filter does.
func Count[T any](view View[T]) uint64 {
	count := uint64(0)

	for cur := view.Start(); !cur.Equal(view.end); cur.Advance() {
		count++
	}

	return count
}
