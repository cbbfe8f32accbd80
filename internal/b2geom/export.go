package b2geom

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/tokamak-reactor/SOLPS-analysis-toolkit/internal/fieldstream"
)

type exportRecord struct {
	Version             string                 `json:"version"`
	FormatType          string                 `json:"format_type"`
	ConvertedFromLegacy bool                   `json:"converted_from_legacy"`
	Fields              map[string]exportField `json:"fields"`
}

type exportField struct {
	DType string `json:"dtype"`
	Shape []int  `json:"shape,omitempty"`
	Data  any    `json:"data,omitempty"`
	Value any    `json:"value,omitempty"`
}

// ExportJSON renders the record as JSON: metadata plus a name-keyed field
// map where scalars carry a value and arrays carry dtype, shape, and
// row-major data. Map keys serialize in sorted order, so the output is
// deterministic for a given record.
func (r *Record) ExportJSON() ([]byte, error) {
	out := exportRecord{
		Version:             r.Version,
		FormatType:          r.FormatType,
		ConvertedFromLegacy: r.ConvertedFromLegacy,
		Fields:              make(map[string]exportField, len(r.Fields)),
	}
	for name, v := range r.Fields {
		f, err := describeField(v)
		if err != nil {
			return nil, fmt.Errorf("export field %q: %w", name, err)
		}
		out.Fields[name] = f
	}
	return json.Marshal(out)
}

func describeField(v any) (exportField, error) {
	switch t := v.(type) {
	case int64:
		return exportField{DType: "i64", Value: t}, nil
	case float64:
		return exportField{DType: "f64", Value: t}, nil
	case fieldstream.Array[int64]:
		return exportField{DType: "i64", Shape: t.Shape, Data: t.Data}, nil
	case fieldstream.Array[float64]:
		return exportField{DType: "f64", Shape: t.Shape, Data: t.Data}, nil
	default:
		return exportField{}, fmt.Errorf("unsupported field value type %T", v)
	}
}
