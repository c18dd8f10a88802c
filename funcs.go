package goranges

import "golang.org/x/exp/constraints"

// Number is a constraint that permits any integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// LessThan returns a predicate that matches elements less than threshold.
func LessThan[T constraints.Ordered](threshold T) PredicateFunc[T] {
	return func(elem T) bool {
		return elem < threshold
	}
}

// GreaterThan returns a predicate that matches elements greater than threshold.
func GreaterThan[T constraints.Ordered](threshold T) PredicateFunc[T] {
	return func(elem T) bool {
		return elem > threshold
	}
}

// Between returns a predicate that matches elements strictly between low and high.
func Between[T constraints.Ordered](low T, high T) PredicateFunc[T] {
	return AllOf(GreaterThan(low), LessThan(high))
}

// AllOf returns a predicate that matches elements matched by all of preds.
// It matches every element if preds is empty.
func AllOf[T any](preds ...PredicateFunc[T]) PredicateFunc[T] {
	return func(elem T) bool {
		for _, pred := range preds {
			if !pred(elem) {
				return false
			}
		}

		return true
	}
}

// AnyOf returns a predicate that matches elements matched by any of preds.
// It matches no element if preds is empty.
func AnyOf[T any](preds ...PredicateFunc[T]) PredicateFunc[T] {
	return func(elem T) bool {
		for _, pred := range preds {
			if pred(elem) {
				return true
			}
		}

		return false
	}
}

// Not returns a predicate that matches elements not matched by pred.
func Not[T any](pred PredicateFunc[T]) PredicateFunc[T] {
	return func(elem T) bool {
		return !pred(elem)
	}
}

// MultiplyBy returns a function that multiplies elements by coef.
func MultiplyBy[T Number](coef T) Function[T, T] {
	return func(elem T) T {
		return elem * coef
	}
}

// IfThen returns a function that applies action to elements matched by pred,
// and returns other elements unchanged.
func IfThen[T any](pred PredicateFunc[T], action Function[T, T]) Function[T, T] {
	return func(elem T) T {
		if pred(elem) {
			return action(elem)
		}

		return elem
	}
}

// Identity returns a function that returns the same element it receives.
func Identity[T any]() Function[T, T] {
	return func(elem T) T {
		return elem
	}
}
