// Package api serves parsed geometry summaries over HTTP.
package api

import (
	"errors"
	"net/http"
	"os"
	"sort"

	"github.com/google/uuid"
	"github.com/labstack/echo/v5"

	"github.com/tokamak-reactor/SOLPS-analysis-toolkit/internal/b2geom"
	"github.com/tokamak-reactor/SOLPS-analysis-toolkit/internal/fieldstream"
	"github.com/tokamak-reactor/SOLPS-analysis-toolkit/internal/logger"
	"github.com/tokamak-reactor/SOLPS-analysis-toolkit/internal/readers"
)

type Server struct {
	log  logger.Logger
	read func(path string) (*b2geom.Record, error)
}

func NewServer(log logger.Logger) *Server {
	if log == nil {
		log = logger.Default()
	}
	return &Server{
		log:  log,
		read: readers.ReadFile,
	}
}

func (s *Server) Register(e *echo.Echo) {
	e.GET("/healthz", s.handleHealth)
	e.POST("/v1/geometry/summary", s.handleSummary)
}

func (s *Server) handleHealth(c *echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSummary(c *echo.Context) error {
	req, err := decodeJSON[SummaryRequest](c.Request().Body)
	if err != nil {
		return writeBadRequest(c, err.Error())
	}
	if req.Path == "" {
		return writeBadRequest(c, "path is required")
	}

	rec, err := s.read(req.Path)
	if err != nil {
		s.log.Warn("geometry read failed", "path", req.Path, "error", err)
		return writeReadError(c, err)
	}

	resp := summarize(req.Path, rec)
	s.log.Info("geometry summarized", "path", req.Path, "fields", len(resp.Fields), "format", resp.FormatType)
	return c.JSON(http.StatusOK, resp)
}

func summarize(path string, rec *b2geom.Record) SummaryResponse {
	names := rec.Names()
	sort.Strings(names)

	fields := make([]FieldSummary, 0, len(names))
	for _, name := range names {
		fs := FieldSummary{Name: name}
		switch v := rec.Fields[name].(type) {
		case int64:
			fs.DType = "i64"
			fs.Elements = 1
			fs.Value = v
		case float64:
			fs.DType = "f64"
			fs.Elements = 1
			fs.Value = v
		case fieldstream.Array[int64]:
			fs.DType = "i64"
			fs.Shape = v.Shape
			fs.Elements = v.Len()
		case fieldstream.Array[float64]:
			fs.DType = "f64"
			fs.Shape = v.Shape
			fs.Elements = v.Len()
		}
		fields = append(fields, fs)
	}

	return SummaryResponse{
		ID:                  "sum_" + uuid.NewString(),
		File:                path,
		Version:             rec.Version,
		FormatType:          rec.FormatType,
		ConvertedFromLegacy: rec.ConvertedFromLegacy,
		Fields:              fields,
	}
}

// writeReadError maps core parse errors onto HTTP statuses with their
// kind names preserved.
func writeReadError(c *echo.Context, err error) error {
	switch {
	case os.IsNotExist(err):
		return writeError(c, http.StatusNotFound, "file_not_found", err.Error())
	case errors.Is(err, readers.ErrNoReader):
		return writeError(c, http.StatusBadRequest, "no_reader", err.Error())
	case errors.Is(err, b2geom.ErrUnrecognizedVersion):
		return writeError(c, http.StatusUnprocessableEntity, "unrecognized_version", err.Error())
	case errors.Is(err, fieldstream.ErrFieldNotFound):
		return writeError(c, http.StatusUnprocessableEntity, "field_not_found", err.Error())
	case errors.Is(err, fieldstream.ErrMalformedHeader):
		return writeError(c, http.StatusUnprocessableEntity, "malformed_header", err.Error())
	case errors.Is(err, fieldstream.ErrDimensionMismatch):
		return writeError(c, http.StatusUnprocessableEntity, "dimension_mismatch", err.Error())
	case errors.Is(err, fieldstream.ErrTruncatedField):
		return writeError(c, http.StatusUnprocessableEntity, "truncated_field", err.Error())
	case errors.Is(err, fieldstream.ErrMalformedToken):
		return writeError(c, http.StatusUnprocessableEntity, "malformed_token", err.Error())
	default:
		var ce *b2geom.ConversionError
		if errors.As(err, &ce) {
			return writeError(c, http.StatusUnprocessableEntity, "conversion_failed", err.Error())
		}
		return writeError(c, http.StatusInternalServerError, "internal_error", err.Error())
	}
}
