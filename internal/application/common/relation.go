package common

import (
	"encoding/json"
	"slices"
	"strings"
)

// Relation is an optionally loaded relation of a response. Tag the field
// with omitzero: a relation that was not requested is left out, a loaded
// one encodes its value even when that value is null or empty.
type Relation[T any] struct {
	loaded bool
	value  T
}

// Loaded wraps a loaded relation value
func Loaded[T any](v T) Relation[T] {
	return Relation[T]{loaded: true, value: v}
}

// IsZero reports whether the relation was not loaded
func (r Relation[T]) IsZero() bool {
	return !r.loaded
}

// Value returns the loaded value and whether the relation was loaded
func (r Relation[T]) Value() (T, bool) {
	return r.value, r.loaded
}

// MarshalJSON encodes the loaded value
func (r Relation[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.value)
}

// Requested reports whether name is among the requested relations
func Requested(with []string, name string) bool {
	return slices.ContainsFunc(with, func(w string) bool {
		return strings.EqualFold(strings.TrimSpace(w), name)
	})
}
