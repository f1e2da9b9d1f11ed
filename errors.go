package bitfield

import (
	"errors"
	"fmt"
)

var (
	// ErrOverflow is returned when a value does not fit in the width of the
	// field it is assigned to.
	//
	// The error is always wrapped with the position of the field and the
	// offending value, applications must use errors.Is rather than equality
	// comparisons to test for it.
	ErrOverflow = errors.New("value overflows field width")

	// ErrInvalidSchema is returned when constructing a codec from a field
	// layout that cannot be represented in the declared word width.
	//
	// As with ErrOverflow, this error is wrapped with details about the
	// problem and applications are expected to use errors.Is for comparisons.
	ErrInvalidSchema = errors.New("invalid bitfield schema")
)

func errOverflow(f Field, value uint64) error {
	if f.Name != "" {
		return fmt.Errorf("field %d (%s): value %d does not fit in %d bits: %w", f.Index, f.Name, value, f.Width, ErrOverflow)
	}
	return fmt.Errorf("field %d: value %d does not fit in %d bits: %w", f.Index, value, f.Width, ErrOverflow)
}

func errInvalidSchema(msg string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidSchema, fmt.Sprintf(msg, args...))
}
