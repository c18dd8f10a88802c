package goranges

import "fmt"

// Generator produces an unbounded series of elements, one per call to Next.
type Generator[T any] interface {
	Next() T
}

// GeneratorFunc is a function that implements Generator.
type GeneratorFunc[T any] func() T

// Counter is a Generator of evenly spaced numbers.
type Counter[T Number] struct {
	next T
	step T
}

// From returns a view over the elements of elems, in order.
// The view borrows elems: changes made to elems are visible to the view, and elems must not shrink while the view is in use.
func From[T any](elems []T) View[T] {
	return NewView[T](
		&sliceCursor[T]{elems: elems},
		&sliceCursor[T]{elems: elems, pos: len(elems)},
	)
}

// Join returns a view over the elements of the given views, in order.
func Join[T any](views ...View[T]) View[T] {
	start := &joinCursor[T]{views: views}
	if len(views) > 0 {
		start.cur = views[0].Start()
	}

	return NewView[T](start, &joinCursor[T]{views: views, idx: len(views)})
}

// Iota returns an infinite view over the numbers start, start+step, start+2*step, and so on.
func Iota[T Number](start T, step T) View[T] {
	return NewView[T](
		&iotaCursor[T]{value: start, step: step},
		&iotaCursor[T]{end: true},
	)
}

// Generate returns an infinite view over the elements produced by gen.
// gen is pulled lazily, once per element read or skipped.
// Cursors of the view share gen, so iterating the view a second time continues where gen left off.
func Generate[T any](gen Generator[T]) View[T] {
	return NewView[T](
		&genCursor[T]{gen: gen},
		&genCursor[T]{end: true},
	)
}

// NewCounter returns a counter that starts at start and increases by step.
func NewCounter[T Number](start T, step T) *Counter[T] {
	return &Counter[T]{
		next: start,
		step: step,
	}
}

// Ints returns a counter over start, start+1, start+2, and so on.
func Ints(start int) *Counter[int] {
	return NewCounter(start, 1)
}

// Odds returns a counter over the odd numbers 1, 3, 5, and so on.
func Odds() *Counter[int] {
	return NewCounter(1, 2)
}

// Next implements Generator.
func (f GeneratorFunc[T]) Next() T {
	return f()
}

// Next implements Generator.
func (c *Counter[T]) Next() T {
	n := c.next
	c.next += c.step

	return n
}

type sliceCursor[T any] struct {
	elems []T
	pos   int
}

func (c *sliceCursor[T]) Current() T {
	if c.pos >= len(c.elems) {
		panic(fmt.Errorf("%w: dereferencing slice position %d of %d", ErrCursorExhausted, c.pos, len(c.elems)))
	}

	return c.elems[c.pos]
}

func (c *sliceCursor[T]) Advance() {
	if c.pos >= len(c.elems) {
		panic(fmt.Errorf("%w: advancing slice position %d of %d", ErrCursorExhausted, c.pos, len(c.elems)))
	}

	c.pos++
}

func (c *sliceCursor[T]) Equal(other Cursor[T]) bool {
	return c.pos == sameCursor[*sliceCursor[T]](other).pos
}

func (c *sliceCursor[T]) Clone() Cursor[T] {
	clone := *c
	return &clone
}

// joinCursor walks the views one after the other.
// cur is nil once all views have been exhausted.
// Equal only moves the receiver past exhausted views, never other, so it is reliable against the end cursor
// but two cursors in the middle of the view may compare unequal at the same logical position.
type joinCursor[T any] struct {
	views []View[T]
	idx   int
	cur   Cursor[T]
}

func (c *joinCursor[T]) Current() T {
	if c.cur == nil {
		panic(fmt.Errorf("%w: dereferencing joined view", ErrCursorExhausted))
	}

	return c.cur.Current()
}

func (c *joinCursor[T]) Advance() {
	if c.cur == nil {
		panic(fmt.Errorf("%w: advancing joined view", ErrCursorExhausted))
	}

	c.cur.Advance()
}

func (c *joinCursor[T]) Equal(other Cursor[T]) bool {
	o := sameCursor[*joinCursor[T]](other)

	c.skipExhausted()

	if c.idx != o.idx {
		return false
	}

	if c.cur == nil || o.cur == nil {
		return c.cur == nil && o.cur == nil
	}

	return c.cur.Equal(o.cur)
}

// skipExhausted moves c to the next view that still has elements.
func (c *joinCursor[T]) skipExhausted() {
	for c.cur != nil && c.cur.Equal(c.views[c.idx].end) {
		c.idx++
		c.cur = nil

		if c.idx < len(c.views) {
			c.cur = c.views[c.idx].Start()
		}
	}
}

func (c *joinCursor[T]) Clone() Cursor[T] {
	clone := *c
	if c.cur != nil {
		clone.cur = c.cur.Clone()
	}

	return &clone
}

// iotaCursor computes its elements from its position; the end cursor is never reached.
type iotaCursor[T Number] struct {
	value T
	step  T
	pos   uint64
	end   bool
}

func (c *iotaCursor[T]) Current() T {
	if c.end {
		panic(fmt.Errorf("%w: dereferencing end of infinite view", ErrCursorExhausted))
	}

	return c.value
}

func (c *iotaCursor[T]) Advance() {
	if c.end {
		panic(fmt.Errorf("%w: advancing end of infinite view", ErrCursorExhausted))
	}

	c.value += c.step
	c.pos++
}

func (c *iotaCursor[T]) Equal(other Cursor[T]) bool {
	o := sameCursor[*iotaCursor[T]](other)

	if c.end || o.end {
		return c.end && o.end
	}

	return c.pos == o.pos
}

func (c *iotaCursor[T]) Clone() Cursor[T] {
	clone := *c
	return &clone
}

// genCursor pulls from gen when the current element is first read, or when it is skipped unread.
type genCursor[T any] struct {
	gen    Generator[T]
	cur    T
	loaded bool
	pos    uint64
	end    bool
}

func (c *genCursor[T]) Current() T {
	if c.end {
		panic(fmt.Errorf("%w: dereferencing end of generated view", ErrCursorExhausted))
	}

	if !c.loaded {
		c.cur = c.gen.Next()
		c.loaded = true
	}

	return c.cur
}

func (c *genCursor[T]) Advance() {
	if c.end {
		panic(fmt.Errorf("%w: advancing end of generated view", ErrCursorExhausted))
	}

	if !c.loaded {
		c.gen.Next()
	}

	var zero T
	c.cur = zero
	c.loaded = false
	c.pos++
}

func (c *genCursor[T]) Equal(other Cursor[T]) bool {
	o := sameCursor[*genCursor[T]](other)

	if c.end || o.end {
		return c.end && o.end
	}

	return c.pos == o.pos
}

func (c *genCursor[T]) Clone() Cursor[T] {
	clone := *c
	return &clone
}
