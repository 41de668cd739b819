package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"scribe/internal/download"
	"scribe/internal/pipeline"
	"scribe/internal/render"
)

func newInfoCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "info <url>",
		Short: "Show metadata for a media URL without downloading it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := ctx.ensureConfig(); err != nil {
				return err
			}
			if !pipeline.IsURL(args[0]) {
				return fmt.Errorf("info requires a media URL, got %q", args[0])
			}

			downloader := download.NewDownloader(download.YTDLPCommand)
			info, err := downloader.Info(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			printer := message.NewPrinter(language.English)
			rows := [][]string{
				{"Title", info.Title},
				{"Uploader", info.Uploader},
				{"Duration", render.Timestamp(info.Duration)},
				{"Views", printer.Sprintf("%d", info.ViewCount)},
				{"Upload Date", info.UploadDate},
				{"ID", info.ID},
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Field", "Value"}, rows, nil))
			return nil
		},
	}
}
