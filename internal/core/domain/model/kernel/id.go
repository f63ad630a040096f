package kernel

import (
	"strconv"

	"stockflow/internal/pkg/errs"
)

// ErrIDIsNotConstructed indicates an ID holding its zero value, which means it
// was neither assigned by the database nor parsed from a request.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID")

// ID is the integer identity of a persisted record. It is immutable once
// assigned: aggregates receive their ID from the database on first insert and
// carry it unchanged for the rest of their lifetime.
//
// The zero value is invalid and only appears on aggregates that have not been
// persisted yet.
type ID struct {
	value int64
}

// NewID wraps a positive integer identity. Returns a validation error for
// zero or negative values.
func NewID(value int64) (ID, error) {
	id := ID{value: value}
	if err := id.Validate(); err != nil {
		return ID{}, err
	}
	return id, nil
}

// MustNewID wraps a positive integer identity and panics on invalid input.
// Intended for tests and static wiring only.
func MustNewID(value int64) ID {
	id, err := NewID(value)
	if err != nil {
		panic(err)
	}
	return id
}

// Int64 returns the raw integer value.
func (i ID) Int64() int64 {
	return i.value
}

// String returns the decimal representation, used in error messages and logs.
func (i ID) String() string {
	return strconv.FormatInt(i.value, 10)
}

// IsEqual compares two identities by value.
func (i ID) IsEqual(other ID) bool {
	return i.value == other.value
}

// IsZero reports whether the identity has not been assigned yet.
func (i ID) IsZero() bool {
	return i.value == 0
}

// Validate returns ErrIDIsNotConstructed for non-positive values.
func (i ID) Validate() error {
	if i.value <= 0 {
		return ErrIDIsNotConstructed
	}
	return nil
}
