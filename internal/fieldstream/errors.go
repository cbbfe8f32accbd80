package fieldstream

import (
	"errors"
	"fmt"
)

var (
	ErrFieldNotFound     = errors.New("field not found before end of stream")
	ErrMalformedHeader   = errors.New("malformed field header")
	ErrDimensionMismatch = errors.New("dimension mismatch")
	ErrTruncatedField    = errors.New("truncated field data")
	ErrMalformedToken    = errors.New("malformed numeric token")
)

// FieldError wraps a field-level failure with the field name and the
// stream offset the cursor was rolled back to.
type FieldError struct {
	Field string
	Pos   int64
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q at offset %d: %v", e.Field, e.Pos, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }
