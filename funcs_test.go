package goranges

import (
	"testing"

	"github.com/matryer/is"
)

func TestPredicates(t *testing.T) {
	is := is.New(t)

	is.True(LessThan(3)(2))
	is.True(!LessThan(3)(3))
	is.True(GreaterThan(2.5)(3))
	is.True(!GreaterThan("b")("a"))

	is.True(Between(2, 5)(3))
	is.True(!Between(2, 5)(5))

	is.True(AllOf[int]()(1))
	is.True(!AnyOf[int]()(1))
	is.True(AnyOf(even, GreaterThan(10))(11))
	is.True(!AllOf(even, GreaterThan(10))(11))
	is.True(Not(even)(1))
}

func TestActions(t *testing.T) {
	is := is.New(t)

	is.Equal(MultiplyBy(3)(4), 12)
	is.Equal(MultiplyBy(0.5)(3), 1.5)

	halveEven := IfThen(even, func(elem int) int { return elem / 2 })
	is.Equal(halveEven(8), 4)
	is.Equal(halveEven(7), 7)

	is.Equal(Identity[string]()("a"), "a")
}
