package goranges

import (
	"strconv"
	"testing"

	"github.com/matryer/is"
)

func TestPipe3(t *testing.T) {
	is := is.New(t)

	ints := Pipe3(
		From([]int{10, 20, 30, 40, 50, 60, 70, 80, 90}),
		Transform(MultiplyBy(2)),
		Filter(GreaterThan(20)),
		Transform(MultiplyBy(10)),
	)

	is.Equal(ReduceSlice(ints), []int{400, 600, 800, 1000, 1200, 1400, 1600, 1800})
}

func TestPipe2_ChangesType(t *testing.T) {
	is := is.New(t)

	strs := Pipe2(From([]int{1, 2, 3, 4}), Filter(even), Transform(strconv.Itoa))

	is.Equal(ReduceSlice(strs), []string{"2", "4"})
}

func TestChain(t *testing.T) {
	is := is.New(t)

	ints := Chain(From([]int{1, 2, 3, 4, 5, 6}), Filter(even), Transform(MultiplyBy(3)), Drop[int](1))

	is.Equal(ReduceSlice(ints), []int{12, 18})
}

func TestChain_None(t *testing.T) {
	is := is.New(t)

	is.Equal(ReduceSlice(Chain(From([]int{1, 2}))), []int{1, 2})
}

func TestCompose(t *testing.T) {
	tests := []struct {
		a Adaptor[int, int]
		b Adaptor[int, int]
	}{
		{
			a: Transform(MultiplyBy(2)),
			b: Filter(GreaterThan(5)),
		},
		{
			a: Filter(even),
			b: Transform(MultiplyBy(3)),
		},
		{
			a: Filter(even),
			b: Filter(LessThan(7)),
		},
		{
			a: Transform(MultiplyBy(5)),
			b: Transform(func(elem int) int { return elem - 1 }),
		},
		{
			a: EveryNth[int](2),
			b: Filter(GreaterThan(3)),
		},
	}

	for idx, test := range tests {
		t.Run(strconv.Itoa(idx), func(t *testing.T) {
			is := is.New(t)

			ints := From([]int{1, 2, 3, 4, 5, 6, 7, 8})

			want := ReduceSlice(Pipe(Pipe(ints, test.a), test.b))

			is.Equal(ReduceSlice(Pipe(ints, Compose(test.a, test.b))), want)
			is.Equal(ReduceSlice(Pipe2(ints, test.a, test.b)), want)
		})
	}
}

func TestCompose_Functional(t *testing.T) {
	is := is.New(t)

	double := MultiplyBy(2)
	big := GreaterThan(6)

	want := []int{}
	for _, elem := range []int{1, 2, 3, 4, 5} {
		if elem := double(elem); big(elem) {
			want = append(want, elem)
		}
	}

	ints := Pipe(From([]int{1, 2, 3, 4, 5}), Compose(Transform(double), Filter(big)))

	is.Equal(ReduceSlice(ints), want)
}
