package api

// SummaryRequest asks for a parsed summary of a geometry file on the
// server's filesystem.
type SummaryRequest struct {
	Path string `json:"path"`
}

// FieldSummary describes one decoded field without its bulk data.
type FieldSummary struct {
	Name     string `json:"name"`
	DType    string `json:"dtype"`
	Shape    []int  `json:"shape,omitempty"`
	Elements int    `json:"elements"`
	Value    any    `json:"value,omitempty"`
}

// SummaryResponse is the parse result for one file.
type SummaryResponse struct {
	ID                  string         `json:"id"`
	File                string         `json:"file"`
	Version             string         `json:"version"`
	FormatType          string         `json:"format_type"`
	ConvertedFromLegacy bool           `json:"converted_from_legacy"`
	Fields              []FieldSummary `json:"fields"`
}

// APIError is the error payload nested under "error" in failure
// responses.
type APIError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}
