package fieldstream

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func newTestScanner(t *testing.T, data string, chunk int) *Scanner {
	t.Helper()
	s, err := NewScannerSize(strings.NewReader(data), chunk)
	if err != nil {
		t.Fatalf("NewScannerSize() failed: %v", err)
	}
	return s
}

func TestFindFieldRepositionsCursor(t *testing.T) {
	t.Parallel()
	s := newTestScanner(t, "header junk\n*cf: real 2 rg\n1.0 2.0\nnext\n", DefaultChunkSize)

	line, err := s.FindField("rg")
	if err != nil {
		t.Fatalf("FindField() failed: %v", err)
	}
	if line != "*cf: real 2 rg" {
		t.Errorf("line = %q, want header line", line)
	}

	// The cursor must sit on the first byte after the matched line.
	next, err := s.ReadLine()
	if err != nil {
		t.Fatalf("ReadLine() failed: %v", err)
	}
	if next != "1.0 2.0" {
		t.Errorf("next line = %q, want data line", next)
	}
}

func TestFindFieldAcrossChunkBoundary(t *testing.T) {
	t.Parallel()
	// Chunk size 7 forces the header line to straddle several reads.
	data := "aaaaaaaaaaaaaaaaaaaa\n*cf: int 1 target_field\n5\n"
	s := newTestScanner(t, data, 7)

	line, err := s.FindField("target_field")
	if err != nil {
		t.Fatalf("FindField() failed: %v", err)
	}
	if line != "*cf: int 1 target_field" {
		t.Errorf("line = %q", line)
	}
	next, err := s.ReadLine()
	if err != nil {
		t.Fatalf("ReadLine() failed: %v", err)
	}
	if next != "5" {
		t.Errorf("next line = %q, want \"5\"", next)
	}
}

func TestFindFieldResumesAfterPreviousMatch(t *testing.T) {
	t.Parallel()
	s := newTestScanner(t, "*cf: int 1 nx\n7\n*cf: int 1 nx\n9\n", DefaultChunkSize)

	if _, err := s.FindField("nx"); err != nil {
		t.Fatalf("first FindField() failed: %v", err)
	}
	if line, _ := s.ReadLine(); line != "7" {
		t.Fatalf("first payload = %q, want \"7\"", line)
	}

	// The second search must start after the consumed block, not rescan
	// the first header.
	if _, err := s.FindField("nx"); err != nil {
		t.Fatalf("second FindField() failed: %v", err)
	}
	if line, _ := s.ReadLine(); line != "9" {
		t.Errorf("second payload = %q, want \"9\"", line)
	}
}

func TestFindFieldNotFoundRestoresCursor(t *testing.T) {
	t.Parallel()
	s := newTestScanner(t, "one\ntwo\nthree\n", 4)
	if line, _ := s.ReadLine(); line != "one" {
		t.Fatalf("ReadLine() = %q", line)
	}
	pos := s.Pos()

	_, err := s.FindField("missing")
	if !errors.Is(err, ErrFieldNotFound) {
		t.Fatalf("FindField() error = %v, want ErrFieldNotFound", err)
	}
	var fe *FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("FindField() error = %T, want *FieldError", err)
	}
	if fe.Field != "missing" {
		t.Errorf("FieldError.Field = %q", fe.Field)
	}
	if s.Pos() != pos {
		t.Errorf("Pos() = %d after failed search, want %d", s.Pos(), pos)
	}
	// The stream is still usable from the restored position.
	if line, _ := s.ReadLine(); line != "two" {
		t.Errorf("ReadLine() after rollback = %q, want \"two\"", line)
	}
}

func TestFindFieldIgnoresUnterminatedTrailingLine(t *testing.T) {
	t.Parallel()
	// No trailing newline: the final line is never completed, so it can
	// not match.
	s := newTestScanner(t, "filler\n*cf: int 1 nx", DefaultChunkSize)
	_, err := s.FindField("nx")
	if !errors.Is(err, ErrFieldNotFound) {
		t.Fatalf("FindField() error = %v, want ErrFieldNotFound", err)
	}
}

func TestReadLineCRLF(t *testing.T) {
	t.Parallel()
	s := newTestScanner(t, "alpha\r\nbeta\r\n", 3)
	if line, _ := s.ReadLine(); line != "alpha" {
		t.Errorf("ReadLine() = %q, want \"alpha\"", line)
	}
	if line, _ := s.ReadLine(); line != "beta" {
		t.Errorf("ReadLine() = %q, want \"beta\"", line)
	}
	if _, err := s.ReadLine(); err != io.EOF {
		t.Errorf("ReadLine() at end = %v, want io.EOF", err)
	}
}

func TestReadTokensWrappedLines(t *testing.T) {
	t.Parallel()
	s := newTestScanner(t, "1 2 3\n4 5\n6 7 8 9\nrest\n", DefaultChunkSize)
	toks, err := s.ReadTokens(7)
	if err != nil {
		t.Fatalf("ReadTokens() failed: %v", err)
	}
	want := []string{"1", "2", "3", "4", "5", "6", "7"}
	for i, w := range want {
		if toks[i] != w {
			t.Errorf("toks[%d] = %q, want %q", i, toks[i], w)
		}
	}
	// Surplus tokens "8 9" on the last consumed line are discarded.
	if line, _ := s.ReadLine(); line != "rest" {
		t.Errorf("line after ReadTokens = %q, want \"rest\"", line)
	}
}

func TestReadTokensTruncatedRestoresCursor(t *testing.T) {
	t.Parallel()
	s := newTestScanner(t, "1 2\n3\n", 5)
	pos := s.Pos()
	_, err := s.ReadTokens(5)
	if !errors.Is(err, ErrTruncatedField) {
		t.Fatalf("ReadTokens() error = %v, want ErrTruncatedField", err)
	}
	if s.Pos() != pos {
		t.Errorf("Pos() = %d after truncation, want %d", s.Pos(), pos)
	}
}

func TestSeekTo(t *testing.T) {
	t.Parallel()
	s := newTestScanner(t, "abc\ndef\n", DefaultChunkSize)
	if _, err := s.ReadLine(); err != nil {
		t.Fatal(err)
	}
	if err := s.SeekTo(0); err != nil {
		t.Fatalf("SeekTo(0) failed: %v", err)
	}
	if s.Pos() != 0 {
		t.Errorf("Pos() = %d, want 0", s.Pos())
	}
	if line, _ := s.ReadLine(); line != "abc" {
		t.Errorf("ReadLine() = %q, want \"abc\"", line)
	}
}
