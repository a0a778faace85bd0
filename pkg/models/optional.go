package models

import (
	"bytes"
	"encoding/json"
)

// Optional is a tri-state field: absent, explicitly null, or set to a value.
// Tag fields with `json:",omitzero"` so absent values are left out of the body.
type Optional[T any] struct {
	value   T
	present bool
	null    bool
}

// Some returns an Optional holding v
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// Null returns an Optional that encodes as an explicit JSON null
func Null[T any]() Optional[T] {
	return Optional[T]{present: true, null: true}
}

// IsZero reports whether the field is absent. encoding/json uses it for omitzero.
func (o Optional[T]) IsZero() bool {
	return !o.present
}

// IsPresent reports whether the field was set, null included
func (o Optional[T]) IsPresent() bool {
	return o.present
}

// IsNull reports whether the field was explicitly null
func (o Optional[T]) IsNull() bool {
	return o.present && o.null
}

// Get returns the value and whether one is available
func (o Optional[T]) Get() (T, bool) {
	if !o.present || o.null {
		var zero T
		return zero, false
	}
	return o.value, true
}

// OrElse returns the value, or fallback when absent or null
func (o Optional[T]) OrElse(fallback T) T {
	if v, ok := o.Get(); ok {
		return v
	}
	return fallback
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.present || o.null {
		return jsonNull, nil
	}
	return json.Marshal(o.value)
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.present = true
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		var zero T
		o.value = zero
		o.null = true
		return nil
	}
	o.null = false
	return json.Unmarshal(data, &o.value)
}
