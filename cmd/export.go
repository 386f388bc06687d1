package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/killallgit/vidcode-api/internal/services/coding"
	"github.com/killallgit/vidcode-api/internal/services/export"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var (
		project string
		format  string
		outPath string
	)

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export a project's results or codebook",
		Long: `Write a project's annotations or codebook to a file.

Formats:
  csv, xlsx  - every stored annotation
  json, yaml - the project codebook

Example:
  vidcode-api export --project demo --format csv --out results.csv
  vidcode-api export --project demo --format yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			db, err := openDatabase(cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			defer db.Close()

			svc := export.NewService(coding.NewRepository(db.DB))
			data, err := render(cmd.Context(), svc, project, format)
			if err != nil {
				return err
			}

			var out io.Writer = cmd.OutOrStdout()
			if outPath != "" && outPath != "-" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("creating %s: %w", outPath, err)
				}
				defer f.Close()
				out = f
			}
			if _, err := out.Write(data); err != nil {
				return fmt.Errorf("writing export: %w", err)
			}

			log.Debug().Str("project", project).Str("format", format).Int("bytes", len(data)).Msg("export written")
			return nil
		},
	}

	exportCmd.Flags().StringVar(&project, "project", "", "project slug")
	exportCmd.Flags().StringVar(&format, "format", "csv", "csv, xlsx, json or yaml")
	exportCmd.Flags().StringVar(&outPath, "out", "-", "output file (- for stdout)")
	_ = exportCmd.MarkFlagRequired("project")
	return exportCmd
}

func render(ctx context.Context, svc export.Service, project, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "csv":
		return svc.ResultsCSV(ctx, project)
	case "xlsx":
		return svc.ResultsXLSX(ctx, project)
	case "json":
		return svc.CodebookJSON(ctx, project)
	case "yaml", "yml":
		return svc.CodebookYAML(ctx, project)
	default:
		return nil, fmt.Errorf("unsupported export format: %q", format)
	}
}
