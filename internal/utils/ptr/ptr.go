// Package ptr holds helpers for the pointer-typed nullable columns of a
// record.
package ptr

// To creates a pointer to the given value.
func To[T any](v T) *T {
	return &v
}

// Deref returns the pointed-to value or fallback when p is nil.
func Deref[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}

// Or returns p when set, otherwise a pointer to fallback.
func Or[T any](p *T, fallback T) *T {
	if p == nil {
		return To(fallback)
	}
	return p
}

// Equal reports whether both pointers are nil or point to equal values.
func Equal[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// Any unwraps p into an interface value, yielding an untyped nil for a
// nil pointer so callers can test for null with == nil.
func Any[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
