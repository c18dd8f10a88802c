package goranges

import (
	"errors"
	"fmt"
)

// Function returns the result of applying an operation to elem.
type Function[T any, U any] func(elem T) U

// PredicateFunc returns true if elem matches a predicate.
type PredicateFunc[T any] func(elem T) bool

// ErrInvalidStride is the error Stride panics with when asked for a step of zero.
var ErrInvalidStride = errors.New("invalid stride")

// Transform returns an adaptor that maps each element to type U using fn.
// fn is called each time an element is read, and never for elements that are not read.
func Transform[T any, U any](fn Function[T, U]) Adaptor[T, U] {
	return func(view View[T]) View[U] {
		return NewView[U](
			&transformCursor[T, U]{inner: view.Start(), fn: fn},
			&transformCursor[T, U]{inner: view.End(), fn: fn},
		)
	}
}

// Filter returns an adaptor that only lets through elements for which pred returns true.
// pred is called at most once for each element that the iteration reaches.
func Filter[T any](pred PredicateFunc[T]) Adaptor[T, T] {
	return func(view View[T]) View[T] {
		return NewView[T](
			&filterCursor[T]{inner: view.Start(), pred: pred},
			&filterCursor[T]{inner: view.End(), pred: pred},
		)
	}
}

// Stride returns an adaptor that selects the elements at positions offset, offset+n, offset+2*n, and so on.
// An offset beyond the end of the view yields an empty view. Stride panics with ErrInvalidStride if n is zero.
func Stride[T any](n uint64, offset uint64) Adaptor[T, T] {
	if n == 0 {
		panic(fmt.Errorf("%w: step must be at least 1", ErrInvalidStride))
	}

	return func(view View[T]) View[T] {
		return NewView[T](
			&strideCursor[T]{inner: view.Start(), step: n, pending: offset},
			&strideCursor[T]{inner: view.End(), step: n},
		)
	}
}

// EveryNth returns an adaptor that selects every nth element, starting with the first.
func EveryNth[T any](n uint64) Adaptor[T, T] {
	return Stride[T](n, 0)
}

// Drop returns an adaptor that skips the first num elements.
func Drop[T any](num uint64) Adaptor[T, T] {
	return Stride[T](1, num)
}

// Take returns an adaptor that lets through at most max elements.
// Take is the way to bound an infinite view before materializing it.
func Take[T any](max uint64) Adaptor[T, T] {
	return func(view View[T]) View[T] {
		return NewView[T](
			&takeCursor[T]{inner: view.Start(), remaining: max},
			&takeCursor[T]{inner: view.End()},
		)
	}
}

// Peek returns an adaptor that calls peek with each element that is read, and lets the element through unchanged.
func Peek[T any](peek func(elem T)) Adaptor[T, T] {
	return Transform(func(elem T) T {
		peek(elem)
		return elem
	})
}

// FlatMap returns an adaptor that calls fn for each element, mapping it to an intermediate view of elements of type U.
// The new view produces all elements of the intermediate views, in order.
// fn is called once an element is reached, and its view is only walked as far as the iteration goes.
func FlatMap[T any, U any](fn Function[T, View[U]]) Adaptor[T, U] {
	return func(view View[T]) View[U] {
		return NewView[U](
			&flatMapCursor[T, U]{outer: view.Start(), fn: fn},
			&flatMapCursor[T, U]{outer: view.End(), fn: fn},
		)
	}
}

type transformCursor[T any, U any] struct {
	inner Cursor[T]
	fn    Function[T, U]
}

func (c *transformCursor[T, U]) Current() U {
	return c.fn(c.inner.Current())
}

func (c *transformCursor[T, U]) Advance() {
	c.inner.Advance()
}

func (c *transformCursor[T, U]) Equal(other Cursor[U]) bool {
	return c.inner.Equal(sameCursor[*transformCursor[T, U]](other).inner)
}

func (c *transformCursor[T, U]) Clone() Cursor[U] {
	return &transformCursor[T, U]{
		inner: c.inner.Clone(),
		fn:    c.fn,
	}
}

// filterCursor searches for the next matching element when it is compared to the end cursor.
// matched is set once the inner cursor's current element has passed pred.
type filterCursor[T any] struct {
	inner   Cursor[T]
	pred    PredicateFunc[T]
	matched bool
}

// Current trusts that Equal has already moved the inner cursor onto a matching element.
func (c *filterCursor[T]) Current() T {
	return c.inner.Current()
}

func (c *filterCursor[T]) Advance() {
	c.inner.Advance()
	c.matched = false
}

func (c *filterCursor[T]) Equal(other Cursor[T]) bool {
	end := sameCursor[*filterCursor[T]](other).inner

	for !c.inner.Equal(end) {
		if c.matched || c.pred(c.inner.Current()) {
			c.matched = true
			return false
		}

		c.inner.Advance()
	}

	return true
}

func (c *filterCursor[T]) Clone() Cursor[T] {
	return &filterCursor[T]{
		inner:   c.inner.Clone(),
		pred:    c.pred,
		matched: c.matched,
	}
}

// strideCursor owes pending skips to its inner cursor; they are paid when it is compared to the end cursor.
type strideCursor[T any] struct {
	inner   Cursor[T]
	step    uint64
	pending uint64
}

// Current reads the inner cursor without checking bounds, Equal must have reported that the end has not been reached.
func (c *strideCursor[T]) Current() T {
	return c.inner.Current()
}

func (c *strideCursor[T]) Advance() {
	c.inner.Advance()
	c.pending = c.step - 1
}

func (c *strideCursor[T]) Equal(other Cursor[T]) bool {
	end := sameCursor[*strideCursor[T]](other).inner

	for ; c.pending > 0; c.pending-- {
		if c.inner.Equal(end) {
			return true
		}

		c.inner.Advance()
	}

	return c.inner.Equal(end)
}

func (c *strideCursor[T]) Clone() Cursor[T] {
	return &strideCursor[T]{
		inner:   c.inner.Clone(),
		step:    c.step,
		pending: c.pending,
	}
}

type takeCursor[T any] struct {
	inner     Cursor[T]
	remaining uint64
}

func (c *takeCursor[T]) Current() T {
	if c.remaining == 0 {
		panic(fmt.Errorf("%w: dereferencing past limit", ErrCursorExhausted))
	}

	return c.inner.Current()
}

func (c *takeCursor[T]) Advance() {
	if c.remaining == 0 {
		panic(fmt.Errorf("%w: advancing past limit", ErrCursorExhausted))
	}

	c.inner.Advance()
	c.remaining--
}

func (c *takeCursor[T]) Equal(other Cursor[T]) bool {
	end := sameCursor[*takeCursor[T]](other).inner

	if c.remaining == 0 {
		return true
	}

	return c.inner.Equal(end)
}

func (c *takeCursor[T]) Clone() Cursor[T] {
	return &takeCursor[T]{
		inner:     c.inner.Clone(),
		remaining: c.remaining,
	}
}

// flatMapCursor walks the view fn returned for the outer cursor's current element.
// sub is nil until Equal has reached an outer element, and again after that element's view is exhausted.
type flatMapCursor[T any, U any] struct {
	outer  Cursor[T]
	fn     Function[T, View[U]]
	sub    Cursor[U]
	subEnd Cursor[U]
}

func (c *flatMapCursor[T, U]) Current() U {
	if c.sub == nil {
		panic(fmt.Errorf("%w: dereferencing flat-mapped view", ErrCursorExhausted))
	}

	return c.sub.Current()
}

func (c *flatMapCursor[T, U]) Advance() {
	if c.sub == nil {
		panic(fmt.Errorf("%w: advancing flat-mapped view", ErrCursorExhausted))
	}

	c.sub.Advance()
}

func (c *flatMapCursor[T, U]) Equal(other Cursor[U]) bool {
	end := sameCursor[*flatMapCursor[T, U]](other).outer

	for {
		if c.sub != nil {
			if !c.sub.Equal(c.subEnd) {
				return false
			}

			c.outer.Advance()
			c.sub = nil
			c.subEnd = nil
		}

		if c.outer.Equal(end) {
			return true
		}

		view := c.fn(c.outer.Current())
		c.sub = view.Start()
		c.subEnd = view.end
	}
}

func (c *flatMapCursor[T, U]) Clone() Cursor[U] {
	clone := *c
	clone.outer = c.outer.Clone()

	if c.sub != nil {
		clone.sub = c.sub.Clone()
	}

	return &clone
}
