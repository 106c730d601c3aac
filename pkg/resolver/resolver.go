// Package resolver implements the "first valid source wins" primitive every
// field extractor is built on.
//
// A field is described by an ordered list of candidates. Each candidate
// names a source and a path inside it, a converter to the field type and
// an optional validator. First walks the list and returns the first value
// that exists, converts and validates. Any failure along the way, including
// a panic inside a converter, only means "this candidate has no value".
//
//	name := resolver.First(doc,
//	    resolver.Candidate[string]{Source: sources.Storefront, Path: "Name", Convert: resolver.ToString, Validate: resolver.NonEmpty},
//	    resolver.Candidate[string]{Source: sources.Deals, Path: "GameName", Convert: resolver.ToString, Validate: resolver.NonEmpty},
//	)
package resolver

import (
	"fmt"

	"github.com/agentstation/storecat/pkg/authority"
	"github.com/agentstation/storecat/pkg/sources"
)

// Source is anything a candidate can be read from.
type Source interface {
	Lookup(id sources.ID, path string) (any, bool)
}

// Value is an optional resolved value.
type Value[T any] struct {
	val T
	ok  bool
}

// Some wraps a present value.
func Some[T any](v T) Value[T] {
	return Value[T]{val: v, ok: true}
}

// None returns the "no value" marker.
func None[T any]() Value[T] {
	return Value[T]{}
}

// Get returns the value and whether it is present.
func (v Value[T]) Get() (T, bool) {
	return v.val, v.ok
}

// OK reports whether a value is present.
func (v Value[T]) OK() bool {
	return v.ok
}

// Or returns the value or fallback when absent.
func (v Value[T]) Or(fallback T) T {
	if !v.ok {
		return fallback
	}
	return v.val
}

// Ptr returns a pointer to a copy of the value, or nil when absent.
func (v Value[T]) Ptr() *T {
	if !v.ok {
		return nil
	}
	val := v.val
	return &val
}

// String renders the value for logs.
func (v Value[T]) String() string {
	if !v.ok {
		return "<none>"
	}
	return fmt.Sprint(v.val)
}

// Converter turns a raw decoded value into the field type.
type Converter[T any] func(any) (T, error)

// Validator accepts or rejects a converted value.
type Validator[T any] func(T) bool

// Candidate is one (source, accessor, converter, validator) capsule.
type Candidate[T any] struct {
	Source   sources.ID
	Path     string
	Convert  Converter[T]
	Validate Validator[T]
}

func (c Candidate[T]) resolve(src Source) (val T, ok bool) {
	defer func() {
		if recover() != nil {
			var zero T
			val, ok = zero, false
		}
	}()

	raw, found := src.Lookup(c.Source, c.Path)
	if !found {
		return val, false
	}
	if c.Convert == nil {
		typed, isT := raw.(T)
		if !isT {
			return val, false
		}
		val = typed
	} else {
		converted, err := c.Convert(raw)
		if err != nil {
			return val, false
		}
		val = converted
	}
	if c.Validate != nil && !c.Validate(val) {
		var zero T
		return zero, false
	}
	return val, true
}

// First returns the first candidate value that is present, converts and
// validates, or None.
func First[T any](src Source, candidates ...Candidate[T]) Value[T] {
	for _, c := range candidates {
		if v, ok := c.resolve(src); ok {
			return Some(v)
		}
	}
	return None[T]()
}

// Candidates builds a candidate list from authority entries, keeping
// their order and sharing one converter and validator.
func Candidates[T any](fields []authority.Field, convert Converter[T], validate Validator[T]) []Candidate[T] {
	out := make([]Candidate[T], 0, len(fields))
	for _, f := range fields {
		out = append(out, Candidate[T]{
			Source:   f.Source,
			Path:     f.Path,
			Convert:  convert,
			Validate: validate,
		})
	}
	return out
}

// Resolve looks a field up in the authority table and resolves it.
func Resolve[T any](src Source, a authority.Authority, field string, convert Converter[T], validate Validator[T]) Value[T] {
	return First(src, Candidates(a.Find(field), convert, validate)...)
}
