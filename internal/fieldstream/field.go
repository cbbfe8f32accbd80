package fieldstream

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// countToken is the fixed position of the declared element count among the
// whitespace-delimited tokens of a field header line.
const countToken = 2

// ReadField locates the named field from the current cursor position and
// decodes its payload into a typed array.
//
// dims gives the expected shape; nil infers the 1-D shape (count,) from
// the header's declared count. The declared count must equal the product
// of dims. On any failure the cursor is rolled back to where it was when
// ReadField was called and the returned error wraps one of the package
// sentinel errors inside a *FieldError.
func ReadField[T Element](s *Scanner, name string, dims []int) (Array[T], error) {
	start := s.Pos()
	fail := func(err error) (Array[T], error) {
		if serr := s.SeekTo(start); serr != nil {
			return Array[T]{}, serr
		}
		return Array[T]{}, &FieldError{Field: name, Pos: start, Err: err}
	}

	line, err := s.FindField(name)
	if err != nil {
		// FindField already restored the cursor and wrapped the error.
		return Array[T]{}, err
	}

	parts := strings.Fields(line)
	if len(parts) <= countToken {
		return fail(fmt.Errorf("%w: %q has no count token", ErrMalformedHeader, line))
	}
	count, err := strconv.Atoi(parts[countToken])
	if err != nil || count < 0 {
		return fail(fmt.Errorf("%w: count token %q in %q", ErrMalformedHeader, parts[countToken], line))
	}

	if dims == nil {
		dims = []int{count}
	}
	if p := product(dims); p != count {
		return fail(fmt.Errorf("%w: header declares %d elements, shape %v holds %d", ErrDimensionMismatch, count, dims, p))
	}

	toks, err := s.ReadTokens(count)
	if err != nil {
		if errors.Is(err, ErrTruncatedField) {
			return fail(fmt.Errorf("%w: stream ended before %d elements", ErrTruncatedField, count))
		}
		return Array[T]{}, err
	}

	data := make([]T, count)
	for i, tok := range toks {
		v, err := parseElement[T](tok)
		if err != nil {
			return fail(fmt.Errorf("%w: %q at element %d", ErrMalformedToken, tok, i))
		}
		data[i] = v
	}
	return Array[T]{Shape: dims, Data: data}, nil
}

func parseElement[T Element](tok string) (T, error) {
	var zero T
	switch any(zero).(type) {
	case int64:
		v, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return zero, err
		}
		return T(v), nil
	case float64:
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return zero, err
		}
		return T(v), nil
	default:
		return zero, fmt.Errorf("unsupported element type %T", zero)
	}
}
