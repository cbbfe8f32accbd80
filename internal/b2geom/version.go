// Package b2geom reads B2.5 geometry files (b2fgmtry) into a single
// version-independent record. The first line of the file carries the
// format version, which selects between the modern field layout and the
// legacy layout; legacy files are converted to the modern data model on
// the way in.
package b2geom

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"github.com/tokamak-reactor/SOLPS-analysis-toolkit/internal/fieldstream"
)

// ErrUnrecognizedVersion means the first line of the file does not match
// the version grammar. This aborts the whole read; no schema is assumed.
var ErrUnrecognizedVersion = errors.New("unrecognized version line")

// versionRe is the fixed grammar of the first line:
// VERSION<2 digits>.<3 digits>.<3 digits><whitespace><token>.
var versionRe = regexp.MustCompile(`^VERSION(\d{2})\.(\d{3})\.(\d{3})\s+\S+`)

// Version is the parsed file format version. It is immutable for the
// lifetime of a read.
type Version struct {
	Major int
	Minor int
	Patch int
}

// String renders the canonical zero-padded form, e.g. "03.002.000".
func (v Version) String() string {
	return fmt.Sprintf("%02d.%03d.%03d", v.Major, v.Minor, v.Patch)
}

// Epoch classifies a version into the schema family that applies to it.
type Epoch string

const (
	EpochLegacy Epoch = "legacy"
	EpochModern Epoch = "modern"
)

// Epoch derives the schema epoch. Purely a function of the version:
// anything before minor 2 is the legacy layout.
func (v Version) Epoch() Epoch {
	if v.Minor < 2 {
		return EpochLegacy
	}
	return EpochModern
}

// ParseVersionLine matches a first line against the version grammar.
func ParseVersionLine(line string) (Version, error) {
	m := versionRe.FindStringSubmatch(line)
	if m == nil {
		return Version{}, fmt.Errorf("%w: %q", ErrUnrecognizedVersion, line)
	}
	major, _ := strconv.Atoi(m[1])
	minor, _ := strconv.Atoi(m[2])
	patch, _ := strconv.Atoi(m[3])
	return Version{Major: major, Minor: minor, Patch: patch}, nil
}

// DetectVersion reads the version from the first line of the stream. It
// always operates at offset 0 and restores the cursor afterwards, so it
// is safe to call regardless of the current read position.
func DetectVersion(s *fieldstream.Scanner) (Version, error) {
	prev := s.Pos()
	if err := s.SeekTo(0); err != nil {
		return Version{}, err
	}
	line, err := s.ReadLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = fmt.Errorf("%w: empty stream", ErrUnrecognizedVersion)
		}
		if serr := s.SeekTo(prev); serr != nil {
			return Version{}, serr
		}
		return Version{}, err
	}
	if err := s.SeekTo(prev); err != nil {
		return Version{}, err
	}
	return ParseVersionLine(line)
}
