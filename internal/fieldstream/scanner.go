// Package fieldstream reads named, dimensioned numeric fields out of flat
// B2.5 text streams without loading the whole file into memory.
//
// A field block is a header line that carries the field name and, as its
// third whitespace token, the declared element count, followed by that many
// numeric tokens wrapped across an arbitrary number of lines. The Scanner
// locates field headers with chunked forward scans and keeps an exact
// absolute cursor, so lookups resume where the previous one finished and
// failed reads roll back instead of corrupting the position.
package fieldstream

import (
	"bytes"
	"errors"
	"io"
	"strings"
)

// DefaultChunkSize is the read granularity for forward scans.
const DefaultChunkSize = 8192

// Scanner is a cursor over a seekable byte stream. It does not own the
// stream; opening and closing are the caller's concern. A Scanner must not
// be shared between goroutines.
type Scanner struct {
	r     io.ReadSeeker
	chunk int
	pos   int64 // absolute offset of the next unconsumed byte
}

// NewScanner wraps r, starting at its current position.
func NewScanner(r io.ReadSeeker) (*Scanner, error) {
	return NewScannerSize(r, DefaultChunkSize)
}

// NewScannerSize is NewScanner with an explicit chunk size, used by tests
// to force matches across chunk boundaries.
func NewScannerSize(r io.ReadSeeker, chunk int) (*Scanner, error) {
	if chunk <= 0 {
		chunk = DefaultChunkSize
	}
	pos, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, err
	}
	return &Scanner{r: r, chunk: chunk, pos: pos}, nil
}

// Pos reports the absolute offset of the cursor.
func (s *Scanner) Pos() int64 { return s.pos }

// SeekTo moves the cursor to an absolute offset.
func (s *Scanner) SeekTo(off int64) error {
	if _, err := s.r.Seek(off, io.SeekStart); err != nil {
		return err
	}
	s.pos = off
	return nil
}

// FindField advances the cursor to immediately after the first completed
// line, from the current position onward, that contains name as a
// substring, and returns that line. Lines are completed by '\n'; bytes
// read past the matched line are returned to the stream by seeking back.
// If the stream ends without a match the cursor is restored to where the
// search started and the error wraps ErrFieldNotFound.
func (s *Scanner) FindField(name string) (string, error) {
	start := s.pos
	var (
		carry []byte
		base  = s.pos // absolute offset of carry[0]
	)
	buf := make([]byte, s.chunk)
	for {
		n, rerr := s.r.Read(buf)
		if n > 0 {
			carry = append(carry, buf[:n]...)
			for {
				i := bytes.IndexByte(carry, '\n')
				if i < 0 {
					break
				}
				end := base + int64(i) + 1
				line := trimLine(carry[:i])
				if strings.Contains(line, name) {
					if err := s.SeekTo(end); err != nil {
						return "", err
					}
					return line, nil
				}
				carry = carry[i+1:]
				base = end
			}
		}
		if rerr != nil {
			if errors.Is(rerr, io.EOF) {
				if err := s.SeekTo(start); err != nil {
					return "", err
				}
				return "", &FieldError{Field: name, Pos: start, Err: ErrFieldNotFound}
			}
			return "", rerr
		}
	}
}

// ReadLine consumes one line and leaves the cursor after its newline. At
// end of stream an unterminated trailing line is returned as-is; io.EOF is
// reported only when no bytes remain.
func (s *Scanner) ReadLine() (string, error) {
	var (
		carry []byte
		base  = s.pos
	)
	buf := make([]byte, s.chunk)
	for {
		n, rerr := s.r.Read(buf)
		if n > 0 {
			carry = append(carry, buf[:n]...)
			if i := bytes.IndexByte(carry, '\n'); i >= 0 {
				if err := s.SeekTo(base + int64(i) + 1); err != nil {
					return "", err
				}
				return trimLine(carry[:i]), nil
			}
		}
		if rerr != nil {
			if errors.Is(rerr, io.EOF) {
				if len(carry) == 0 {
					return "", io.EOF
				}
				if err := s.SeekTo(base + int64(len(carry))); err != nil {
					return "", err
				}
				return trimLine(carry), nil
			}
			return "", rerr
		}
	}
}

// ReadTokens consumes whole lines until n whitespace-delimited tokens have
// been gathered and returns the first n. Surplus tokens on the last
// consumed line are discarded; the cursor lands after that line. If the
// stream ends short the cursor is restored to where the read started and
// the error wraps ErrTruncatedField.
func (s *Scanner) ReadTokens(n int) ([]string, error) {
	start := s.pos
	toks := make([]string, 0, n)
	for len(toks) < n {
		line, err := s.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if serr := s.SeekTo(start); serr != nil {
					return nil, serr
				}
				return nil, ErrTruncatedField
			}
			return nil, err
		}
		toks = append(toks, strings.Fields(line)...)
	}
	return toks[:n], nil
}

func trimLine(b []byte) string {
	return strings.TrimSuffix(string(b), "\r")
}
