package cmd

import (
	"github.com/spf13/cobra"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the entry points discovered in the source tree",
		Long: `List runs discovery only and prints every entry point with its kind,
export key and source path. package.json is neither read nor written.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.List(settings.scanArgs())
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
