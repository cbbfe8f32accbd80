// Package readers selects a file parser by extension or well-known base
// name and handles the file's lifecycle around a single read. The parsers
// themselves never open or close anything.
package readers

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tokamak-reactor/SOLPS-analysis-toolkit/internal/b2geom"
)

// ErrNoReader means no parser is registered for the file's key.
var ErrNoReader = errors.New("no reader registered")

// ReadFunc parses an already-open stream into a record.
type ReadFunc func(rs io.ReadSeeker) (*b2geom.Record, error)

// registry maps a lowercase file key to its parser. SOLPS output files
// are conventionally named after their contents with no extension, so
// bare base names are keys too.
var registry = map[string]ReadFunc{
	"b2fgmtry":  b2geom.Read,
	".b2fgmtry": b2geom.Read,
}

// Register adds or replaces the parser for a key.
func Register(key string, fn ReadFunc) {
	registry[strings.ToLower(key)] = fn
}

// For returns the parser responsible for path, keyed on the extension
// when present, the base name otherwise.
func For(path string) (ReadFunc, error) {
	key := strings.ToLower(filepath.Ext(path))
	if key == "" {
		key = strings.ToLower(filepath.Base(path))
	}
	fn, ok := registry[key]
	if !ok {
		return nil, fmt.Errorf("%w for %q", ErrNoReader, key)
	}
	return fn, nil
}

// ReadFile opens path, parses it with the registered reader, and closes
// the file on all paths.
func ReadFile(path string) (*b2geom.Record, error) {
	fn, err := For(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return fn(f)
}
