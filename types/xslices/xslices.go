// Package xslices provides slice helpers missing from the standard slices
// package, used throughout the module.
package xslices

import (
	"golang.org/x/exp/constraints"
)

// At takes the element at the given index, where a negative index counts from
// the end of the slice.
func At[T any](slice []T, index int) T {
	if index < 0 {
		index = len(slice) + index
	}
	return slice[index]
}

// Last returns the last element of a slice.
func Last[T any](slice []T) T {
	return At(slice, -1)
}

// Copy creates a new shallow copy of the slice. A nil or empty slice copies
// to nil.
func Copy[T any](slice []T) []T {
	if len(slice) == 0 {
		return nil
	}
	slice2 := make([]T, len(slice))
	copy(slice2, slice)
	return slice2
}

// Iota returns a slice of the given size with incremental values starting at
// start: Iota(2, 3) == []int{2, 3, 4}.
func Iota[T constraints.Integer | constraints.Float](start T, size int) (slice []T) {
	slice = make([]T, size)
	for ii := range slice {
		slice[ii] = start + T(ii)
	}
	return
}

// SliceWithValue returns a slice of the given size filled with the given
// value.
func SliceWithValue[T any](size int, value T) []T {
	slice := make([]T, size)
	for ii := range slice {
		slice[ii] = value
	}
	return slice
}

// All reports whether every element of the slice satisfies fn.
func All[T any](slice []T, fn func(T) bool) bool {
	for _, value := range slice {
		if !fn(value) {
			return false
		}
	}
	return true
}
