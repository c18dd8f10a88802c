package goranges

import (
	"testing"

	"github.com/matryer/is"
)

func TestFrom(t *testing.T) {
	is := is.New(t)

	is.Equal(ReduceSlice(From([]int{1, 2, 3, 4, 5})), []int{1, 2, 3, 4, 5})
}

func TestFrom_Empty(t *testing.T) {
	is := is.New(t)

	is.Equal(Count(From([]int(nil))), uint64(0))
}

func TestFrom_Borrows(t *testing.T) {
	is := is.New(t)

	elems := []int{1, 2, 3}
	view := From(elems)

	elems[1] = 20

	is.Equal(ReduceSlice(view), []int{1, 20, 3})
}

func TestJoin(t *testing.T) {
	is := is.New(t)

	ints := Join(From([]int{1, 2}), From([]int{}), From([]int{3, 4, 5}))

	is.Equal(ReduceSlice(ints), []int{1, 2, 3, 4, 5})
}

func TestJoin_None(t *testing.T) {
	is := is.New(t)

	is.Equal(Count(Join[int]()), uint64(0))
}

func TestJoin_Adapted(t *testing.T) {
	is := is.New(t)

	ints := Join(Pipe(From([]int{1, 2, 3, 4}), Filter(even)), From([]int{5, 6}))

	is.Equal(ReduceSlice(ints), []int{2, 4, 5, 6})
}

func TestIota(t *testing.T) {
	is := is.New(t)

	is.Equal(ReduceSlice(Pipe(Iota(3, 1), Take[int](4))), []int{3, 4, 5, 6})
	is.Equal(ReduceSlice(Pipe(Iota(1, 2), Take[int](4))), []int{1, 3, 5, 7})
	is.Equal(ReduceSlice(Pipe(Iota(0.5, 0.25), Take[float64](3))), []float64{0.5, 0.75, 1})
}

func TestIota_Pure(t *testing.T) {
	is := is.New(t)

	odds := Pipe(Iota(1, 2), Take[int](3))

	is.Equal(ReduceSlice(odds), []int{1, 3, 5})
	is.Equal(ReduceSlice(odds), []int{1, 3, 5})
}

func TestCounter(t *testing.T) {
	is := is.New(t)

	ints := Ints(5)
	is.Equal(ints.Next(), 5)
	is.Equal(ints.Next(), 6)

	odds := Odds()
	is.Equal(odds.Next(), 1)
	is.Equal(odds.Next(), 3)
	is.Equal(odds.Next(), 5)
}

func TestGenerate(t *testing.T) {
	is := is.New(t)

	pulls := 0

	gen := GeneratorFunc[int](func() int {
		pulls++
		return pulls * 10
	})

	view := Pipe(Generate[int](gen), Take[int](3))

	is.Equal(pulls, 0)
	is.Equal(ReduceSlice(view), []int{10, 20, 30})
	is.Equal(pulls, 3)
}

func TestGenerate_Stateful(t *testing.T) {
	is := is.New(t)

	odds := Pipe(Generate[int](Odds()), Take[int](3))

	is.Equal(ReduceSlice(odds), []int{1, 3, 5})
	is.Equal(ReduceSlice(odds), []int{7, 9, 11})
}

func TestGenerate_SkippedElementsArePulled(t *testing.T) {
	is := is.New(t)

	odds := Pipe2(Generate[int](Odds()), Drop[int](2), Take[int](2))

	is.Equal(ReduceSlice(odds), []int{5, 7})
}
