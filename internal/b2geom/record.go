package b2geom

import (
	"github.com/tokamak-reactor/SOLPS-analysis-toolkit/internal/fieldstream"
)

// Record is the unified in-memory result of a successful read,
// independent of the source epoch. Fields maps field names to int64 or
// float64 scalars, or to fieldstream.Array values. Records are freshly
// constructed per read and never mutated afterwards.
type Record struct {
	Fields              map[string]any
	Version             string
	FormatType          string
	ConvertedFromLegacy bool
}

// Int returns the named field as an int64 scalar.
func (r *Record) Int(name string) (int64, bool) {
	v, ok := r.Fields[name].(int64)
	return v, ok
}

// Float returns the named field as a float64 scalar.
func (r *Record) Float(name string) (float64, bool) {
	v, ok := r.Fields[name].(float64)
	return v, ok
}

// Ints returns the named field as an integer array.
func (r *Record) Ints(name string) (fieldstream.Array[int64], bool) {
	v, ok := r.Fields[name].(fieldstream.Array[int64])
	return v, ok
}

// Floats returns the named field as a real array.
func (r *Record) Floats(name string) (fieldstream.Array[float64], bool) {
	v, ok := r.Fields[name].(fieldstream.Array[float64])
	return v, ok
}

// Names lists the field names present in the record.
func (r *Record) Names() []string {
	names := make([]string, 0, len(r.Fields))
	for name := range r.Fields {
		names = append(names, name)
	}
	return names
}
