package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"scribe/internal/deps"
)

func newDepsCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "deps",
		Short:       "Check that required external tools are installed",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			statuses := deps.CheckBinaries(deps.Default())

			rows := make([][]string, 0, len(statuses))
			for _, status := range statuses {
				state := "ok"
				detail := status.Command
				if !status.Available {
					state = "missing"
					detail = status.Detail
				}
				rows = append(rows, []string{status.Name, state, detail, status.Description})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]string{"Tool", "Status", "Detail", "Purpose"}, rows, nil))

			if missing := deps.MissingRequired(statuses); len(missing) > 0 {
				return fmt.Errorf("missing required tools: %s", strings.Join(missing, ", "))
			}
			return nil
		},
	}
}
