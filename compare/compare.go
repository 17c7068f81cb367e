// Package compare contains three-way comparison functions used to order the
// elements of the containers in this module.
//
// A comparison function returns a negative number when a < b, zero when a and
// b are equal, and a positive number when a > b. Containers require the order
// to be total and consistent: comparing the same two values must always
// produce the same result.
package compare

import (
	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/constraints"
)

// Function is a comparison function for ordered types.
func Function[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	default:
		return 0
	}
}

// Reverse returns a comparison function ordering values in the opposite
// direction of cmp.
func Reverse[T any](cmp func(T, T) int) func(T, T) int {
	return func(a, b T) int { return cmp(b, a) }
}

// FromComparator adapts an untyped gods comparator, such as
// utils.StringComparator or utils.TimeComparator, to a typed comparison
// function.
func FromComparator[T any](c utils.Comparator) func(T, T) int {
	return func(a, b T) int { return c(a, b) }
}
