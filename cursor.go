package goranges

import (
	"errors"
	"fmt"
)

// Cursor is a position within a sequence.
//
// Equal reports whether the cursor has reached other, which is expected to be the end cursor of the same view.
// Equal is the only end test a cursor offers, so adaptors that skip elements do their skipping inside Equal,
// which may therefore move the receiver forward. It never moves other.
//
// Current and Advance must only be called after Equal has reported that the end has not been reached.
type Cursor[T any] interface {
	// Current returns the element at the cursor's position.
	Current() T

	// Advance moves the cursor to the next position.
	Advance()

	// Equal reports whether the cursor is at the same position as other.
	Equal(other Cursor[T]) bool

	// Clone returns an independent copy of the cursor.
	Clone() Cursor[T]
}

// ErrCursorExhausted is the error a cursor panics with when it is dereferenced or advanced at the end of its sequence.
var ErrCursorExhausted = errors.New("cursor exhausted")

// ErrCursorMismatch is the error a cursor panics with when it is compared to a cursor of another kind.
var ErrCursorMismatch = errors.New("cursor mismatch")

// View is a lazy sequence delimited by a start and an end cursor.
// A View is immutable: iterating it works on copies of its cursors.
type View[T any] struct {
	start Cursor[T]
	end   Cursor[T]
}

// NewView returns a view delimited by start and end.
// Both cursors must be of the same kind, and end must be reachable from start.
func NewView[T any](start Cursor[T], end Cursor[T]) View[T] {
	return View[T]{
		start: start,
		end:   end,
	}
}

// Start returns a copy of the view's start cursor.
func (v View[T]) Start() Cursor[T] {
	return v.start.Clone()
}

// End returns a copy of the view's end cursor.
func (v View[T]) End() Cursor[T] {
	return v.end.Clone()
}

// Iterator returns a new iterator over the elements of v.
func (v View[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{
		cur: v.Start(),
		end: v.end,
	}
}

// Iterator walks the elements of a view once.
type Iterator[T any] struct {
	cur     Cursor[T]
	end     Cursor[T]
	started bool
	done    bool
}

// Next returns the next element, or false if the view has no more elements.
func (it *Iterator[T]) Next() (T, bool) {
	var zero T

	if it.done {
		return zero, false
	}

	if it.started {
		it.cur.Advance()
	}

	it.started = true

	if it.cur.Equal(it.end) {
		it.done = true
		return zero, false
	}

	return it.cur.Current(), true
}

// sameCursor returns other as a cursor of kind C.
// It panics with ErrCursorMismatch if other is of a different kind.
func sameCursor[C Cursor[T], T any](other Cursor[T]) C {
	o, ok := other.(C)
	if !ok {
		panic(fmt.Errorf("%w: %T compared to %T", ErrCursorMismatch, *new(C), other))
	}

	return o
}
