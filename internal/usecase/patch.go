package usecase

import (
	"bytes"
	"encoding/json"
)

// Patch is a partially specified field of an update.
//
//	absent             -> keep the stored value
//	present, non-empty -> replace
//	present, empty     -> keep the stored value
//	cleared            -> remove the stored value
type Patch[T comparable] struct {
	value   T
	present bool
	clear   bool
}

// Set returns a patch carrying value.
func Set[T comparable](value T) Patch[T] {
	return Patch[T]{value: value, present: true}
}

// Clear returns a patch that removes the stored value.
func Clear[T comparable]() Patch[T] {
	return Patch[T]{clear: true}
}

// Value returns the new value and whether it should replace the stored one.
func (p Patch[T]) Value() (T, bool) {
	var zero T
	if !p.present || p.value == zero {
		return zero, false
	}

	return p.value, true
}

// IsClear reports whether the stored value should be removed.
func (p Patch[T]) IsClear() bool {
	return p.clear
}

// IsSet reports whether the patch would change anything.
func (p Patch[T]) IsSet() bool {
	_, ok := p.Value()

	return ok || p.clear
}

// UnmarshalJSON maps JSON null to Clear and any other value to Set.
// Fields missing from the document never reach this method and stay absent.
func (p *Patch[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*p = Clear[T]()

		return nil
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*p = Set(value)

	return nil
}
