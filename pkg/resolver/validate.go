package resolver

import "strings"

// NonEmpty rejects blank strings.
func NonEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// NonNegative rejects values below zero.
func NonNegative[T ~int | ~float64](v T) bool {
	return v >= 0
}

// Positive rejects zero and negative values.
func Positive[T ~int | ~float64](v T) bool {
	return v > 0
}

// Binary accepts only 0 and 1.
func Binary(v int) bool {
	return v == 0 || v == 1
}

// OneOf accepts values from a fixed set.
func OneOf[T comparable](allowed ...T) Validator[T] {
	return func(v T) bool {
		for _, a := range allowed {
			if v == a {
				return true
			}
		}
		return false
	}
}

// All combines validators; every one must accept.
func All[T any](validators ...Validator[T]) Validator[T] {
	return func(v T) bool {
		for _, fn := range validators {
			if fn != nil && !fn(v) {
				return false
			}
		}
		return true
	}
}
