package cmd

import (
	"github.com/spf13/cobra"
)

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Fail if package.json exports are out of date",
		Long: `Check builds the manifest and compares the package.json it would write
with the one on disk. It exits with status 1 and lists the added, removed and
changed keys when they differ. Nothing is written.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Check(settings.generateArgs())
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
