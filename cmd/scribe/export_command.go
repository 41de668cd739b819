package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"scribe/internal/export"
	"scribe/internal/services/whisperx"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var outputDir string
	var baseName string
	var formats []string

	cmd := &cobra.Command{
		Use:   "export <result.json>",
		Short: "Re-export a saved engine JSON result without re-running the model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			result, err := whisperx.LoadResult(args[0])
			if err != nil {
				return err
			}

			pairs, err := export.PairsForFormats(formats)
			if err != nil {
				return err
			}

			target := strings.TrimSpace(outputDir)
			if target == "" {
				target = cfg.Paths.OutputDir
			}
			if err := os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("ensure output dir: %w", err)
			}

			name := strings.TrimSpace(baseName)
			if name == "" {
				name = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			}

			exporter := export.NewExporter(cfg.Export.DefaultFilenamePrefix)
			out := cmd.OutOrStdout()
			return exporter.ExportAll(result, name, pairs, func(artifact export.Artifact) error {
				path := filepath.Join(target, artifact.Filename)
				if err := os.WriteFile(path, artifact.Data, 0o644); err != nil {
					return err
				}
				fmt.Fprintf(out, "Wrote %s\n", path)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Directory for export artifacts")
	cmd.Flags().StringVar(&baseName, "base-name", "", "Filename prefix for export artifacts")
	cmd.Flags().StringSliceVar(&formats, "formats", nil, "Export file formats (txt, docx, srt, vtt)")
	return cmd
}
