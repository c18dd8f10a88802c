package goranges

import "golang.org/x/exp/slices"

// Appender is a container that elements can be appended to.
type Appender[T any] interface {
	Append(elem T)
}

// Slice is a slice that implements Appender through its pointer.
type Slice[T any] []T

// A DuplicateKeyError is returned by a reduction to indicate that
// a key could not be added to a map because it already exists.
type DuplicateKeyError[T any, K comparable] struct {
	// Element is the view's element that caused the error.
	Element T

	// Key is the key that was already in the map.
	Key K
}

// To eagerly renders view into a new, empty container of type C, appending the elements in order.
// *C must implement Appender. view must be finite.
//
//	nums := To[Slice[int]](view)
func To[C any, PC interface {
	*C
	Appender[T]
}, T any](view View[T]) C {
	var container C

	Materialize[T](view, PC(&container))

	return container
}

// Materialize appends the elements of view to dst, in order, and returns dst.
// view must be finite.
func Materialize[T any, C Appender[T]](view View[T], dst C) C {
	Each(view, func(elem T, _ uint64) {
		dst.Append(elem)
	})

	return dst
}

// ReduceSlice returns a slice of the elements of view, in order.
// view must be finite.
func ReduceSlice[T any](view View[T]) []T {
	result, _ := Reduce(view, nil, CollectSlice[T]())
	return result
}

// ReduceSorted returns a slice of the elements of view, sorted using less.
// view must be finite.
func ReduceSorted[T any](view View[T], less func(a T, b T) bool) []T {
	result := ReduceSlice(view)
	slices.SortFunc(result, less)

	return result
}

// CollectSlice returns an accumulator that collects elements into a slice.
func CollectSlice[T any]() AccumulatorFunc[T, []T] {
	return func(elem T, _ uint64, acc []T) ([]T, error) {
		return append(acc, elem), nil
	}
}

// CollectMap returns an accumulator that collects elements into a map.
// Elements are mapped using key and value, respectively.
// If a key is already in the map, the map entry will be overwritten.
func CollectMap[T any, K comparable, V any](key Function[T, K], value Function[T, V]) AccumulatorFunc[T, map[K]V] {
	return func(elem T, _ uint64, acc map[K]V) (map[K]V, error) {
		acc[key(elem)] = value(elem)
		return acc, nil
	}
}

// CollectMapNoDuplicateKeys returns an accumulator that collects elements into a map.
// Elements are mapped using key and value, respectively.
// If a key is already in the map, the reduction stops with a DuplicateKeyError.
func CollectMapNoDuplicateKeys[T any, K comparable, V any](key Function[T, K], value Function[T, V]) AccumulatorFunc[T, map[K]V] {
	return func(elem T, _ uint64, acc map[K]V) (map[K]V, error) {
		key := key(elem)

		if _, ok := acc[key]; ok {
			return acc, &DuplicateKeyError[T, K]{
				Element: elem,
				Key:     key,
			}
		}

		acc[key] = value(elem)

		return acc, nil
	}
}

// CollectGroup returns an accumulator that collects elements into a group map.
// Elements will be grouped into slices according to key.
func CollectGroup[T any, K comparable, V any](key Function[T, K], value Function[T, V]) AccumulatorFunc[T, map[K][]V] {
	return func(elem T, _ uint64, acc map[K][]V) (map[K][]V, error) {
		key := key(elem)
		acc[key] = append(acc[key], value(elem))

		return acc, nil
	}
}

// CollectPartition returns an accumulator that collects elements into a partition map.
// Elements will be grouped into slices according to pred.
func CollectPartition[T any, V any](pred PredicateFunc[T], value Function[T, V]) AccumulatorFunc[T, map[bool][]V] {
	return CollectGroup(Function[T, bool](pred), value)
}

// Append implements Appender.
func (s *Slice[T]) Append(elem T) {
	*s = append(*s, elem)
}

// Error implements error.
func (e *DuplicateKeyError[T, K]) Error() string {
	return "duplicate key"
}
