package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/tokamak-reactor/SOLPS-analysis-toolkit/internal/readers"
)

func exportCmd() *cli.Command {
	var (
		filePath string
		outPath  string
	)

	return &cli.Command{
		Name:  "export",
		Usage: "Parse a geometry file and write the full record as JSON",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "file",
				Aliases:     []string{"f"},
				Usage:       "path to geometry file",
				Destination: &filePath,
				Required:    true,
			},
			&cli.StringFlag{
				Name:        "out",
				Aliases:     []string{"o"},
				Usage:       "output path (default: stdout)",
				Destination: &outPath,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			path := resolveInput(LoadConfig(), filePath)

			rec, err := readers.ReadFile(path)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: read %q: %v", path, err), 1)
			}
			out, err := rec.ExportJSON()
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: export: %v", err), 1)
			}
			out = append(out, '\n')

			if outPath == "" {
				_, err = os.Stdout.Write(out)
				return err
			}
			if err := os.WriteFile(outPath, out, 0o644); err != nil {
				return cli.Exit(fmt.Sprintf("error: write %q: %v", outPath, err), 1)
			}
			return nil
		},
	}
}
