package goranges

// Adaptor returns a new view that lazily adapts the elements of view.
// Adaptors never read elements when they are applied, only when the returned view is iterated.
type Adaptor[T any, U any] func(view View[T]) View[U]

// Pipe applies adaptor to view.
func Pipe[T any, U any](view View[T], adaptor Adaptor[T, U]) View[U] {
	return adaptor(view)
}

// Pipe2 applies a to view, then b to the result.
func Pipe2[T any, U any, V any](view View[T], a Adaptor[T, U], b Adaptor[U, V]) View[V] {
	return b(a(view))
}

// Pipe3 applies a to view, then b, then c.
func Pipe3[T any, U any, V any, W any](view View[T], a Adaptor[T, U], b Adaptor[U, V], c Adaptor[V, W]) View[W] {
	return c(b(a(view)))
}

// Chain applies the given adaptors to view, in order.
func Chain[T any](view View[T], adaptors ...Adaptor[T, T]) View[T] {
	for _, adaptor := range adaptors {
		view = adaptor(view)
	}

	return view
}

// Compose returns an adaptor that applies a, then b.
func Compose[T any, U any, V any](a Adaptor[T, U], b Adaptor[U, V]) Adaptor[T, V] {
	return func(view View[T]) View[V] {
		return b(a(view))
	}
}
