package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"scribe/internal/history"
	"scribe/internal/logging"
	"scribe/internal/pipeline"
	"scribe/internal/render"
	"scribe/internal/transcript"
)

func newTranscribeCommand(ctx *commandContext) *cobra.Command {
	var language string
	var outputDir string
	var baseName string
	var formats []string

	cmd := &cobra.Command{
		Use:   "transcribe <url-or-file>",
		Short: "Transcribe a media URL or local audio file and export the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			p := pipeline.New(cfg, logger)
			if cfg.History.Enabled {
				store, openErr := history.Open(cfg.History.Path)
				if openErr != nil {
					logger.Warn("history store unavailable", logging.Error(openErr))
				} else {
					defer func() { _ = store.Close() }()
					p.WithHistory(store)
				}
			}

			outcome, err := p.Run(cmd.Context(), pipeline.Request{
				Source:    args[0],
				Language:  language,
				OutputDir: outputDir,
				Formats:   formats,
				BaseName:  baseName,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Transcription complete: %s\n", outcome.Title)
			printSummary(out, outcome.Result)
			fmt.Fprintln(out, "Artifacts:")
			for _, path := range outcome.Written {
				fmt.Fprintf(out, "  %s\n", path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", "", "Transcription language (auto-detect when empty)")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Directory for export artifacts")
	cmd.Flags().StringVar(&baseName, "base-name", "", "Filename prefix for export artifacts")
	cmd.Flags().StringSliceVar(&formats, "formats", nil, "Export file formats (txt, docx, srt, vtt)")
	return cmd
}

func printSummary(out io.Writer, result *transcript.Result) {
	entries := render.Summary(result)
	if isTerminal(out) {
		rows := make([][]string, 0, len(entries))
		for _, entry := range entries {
			rows = append(rows, []string{entry.Key, entry.Value})
		}
		fmt.Fprintln(out, renderTable([]string{"Metric", "Value"}, rows, []columnAlignment{alignLeft, alignRight}))
		return
	}
	for _, entry := range entries {
		fmt.Fprintf(out, "%s: %s\n", entry.Key, entry.Value)
	}
}
