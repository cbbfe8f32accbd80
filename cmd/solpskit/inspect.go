package main

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tokamak-reactor/SOLPS-analysis-toolkit/internal/b2geom"
	"github.com/tokamak-reactor/SOLPS-analysis-toolkit/internal/fieldstream"
	"github.com/tokamak-reactor/SOLPS-analysis-toolkit/internal/readers"
)

func inspectCmd() *cli.Command {
	var (
		filePath    string
		fieldFilter string
		preview     int
	)

	return &cli.Command{
		Name:  "inspect",
		Usage: "Inspect the contents of a geometry file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "file",
				Aliases:     []string{"f"},
				Usage:       "path to geometry file (e.g. b2fgmtry)",
				Destination: &filePath,
				Required:    true,
			},
			&cli.StringFlag{
				Name:        "field-filter",
				Usage:       "substring filter for field listing",
				Destination: &fieldFilter,
			},
			&cli.IntFlag{
				Name:        "preview",
				Usage:       "number of leading elements to print per array (0 = none)",
				Value:       4,
				Destination: &preview,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			path := resolveInput(LoadConfig(), filePath)

			rec, err := readers.ReadFile(path)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: read %q: %v", path, err), 1)
			}

			fmt.Printf("Geometry Inspect: %s\n", filepath.Base(path))
			section("Header")
			row("version", rec.Version)
			row("format_type", rec.FormatType)
			row("converted_from_legacy", fmt.Sprintf("%v", rec.ConvertedFromLegacy))

			section("Fields")
			names := rec.Names()
			sort.Strings(names)
			for _, name := range names {
				if fieldFilter != "" && !strings.Contains(name, fieldFilter) {
					continue
				}
				fmt.Println(describeField(rec, name, preview))
			}
			return nil
		},
	}
}

func describeField(rec *b2geom.Record, name string, preview int) string {
	switch v := rec.Fields[name].(type) {
	case int64:
		return fmt.Sprintf("%-8s i64 scalar  %d", name, v)
	case float64:
		return fmt.Sprintf("%-8s f64 scalar  %g", name, v)
	case fieldstream.Array[int64]:
		return fmt.Sprintf("%-8s i64 %s  %s", name, formatShape(v.Shape), previewInts(v.Data, preview))
	case fieldstream.Array[float64]:
		return fmt.Sprintf("%-8s f64 %s  %s", name, formatShape(v.Shape), previewFloats(v.Data, preview))
	default:
		return fmt.Sprintf("%-8s ?", name)
	}
}

func section(title string) {
	line := strings.Repeat("-", len(title)+8)
	fmt.Printf("\n%s\n--- %s ---\n%s\n", line, title, line)
}

func row(label, value string) {
	if value == "" {
		return
	}
	fmt.Printf("%-24s %s\n", label+":", value)
}

func formatShape(shape []int) string {
	parts := make([]string, len(shape))
	for i, d := range shape {
		parts[i] = fmt.Sprintf("%d", d)
	}
	return "(" + strings.Join(parts, ",") + ")"
}

func previewFloats(data []float64, n int) string {
	if n <= 0 || len(data) == 0 {
		return ""
	}
	shown := min(n, len(data))
	parts := make([]string, shown)
	for i := 0; i < shown; i++ {
		parts[i] = fmt.Sprintf("%g", data[i])
	}
	out := strings.Join(parts, " ")
	if shown < len(data) {
		out += " ..."
	}
	return out
}

func previewInts(data []int64, n int) string {
	if n <= 0 || len(data) == 0 {
		return ""
	}
	shown := min(n, len(data))
	parts := make([]string, shown)
	for i := 0; i < shown; i++ {
		parts[i] = fmt.Sprintf("%d", data[i])
	}
	out := strings.Join(parts, " ")
	if shown < len(data) {
		out += " ..."
	}
	return out
}
