// Package cmd provides the root command and CLI setup for exportgen.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/exportgen/internal/controller"
	"github.com/mouse-blink/exportgen/internal/domain"
)

// workflow is built lazily from the resolved settings; tests replace it.
var workflow domain.Workflow

var dryRunFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exportgen",
		Short: "Generate the package.json exports map from the source tree",
		Long: `exportgen scans the source tree of a UI component package and rewrites
the "exports" field of package.json so every public entry point is listed.

Discovered entry points:
  - styles/styles.css and the bundled themes
  - flat components         components/ui/<name>.{ts,tsx}
  - grouped components      components/neynar/<name>/index.{ts,tsx}
  - the utility module      lib/utils.{ts,tsx}
  - hooks                   hooks/<name>.{ts,tsx}

All other fields of package.json are left as they are.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: prepare,
		RunE: func(_ *cobra.Command, _ []string) error {
			args := settings.generateArgs()
			args.DryRun = dryRunFlag

			return workflow.Generate(args)
		},
	}
	bindPersistentFlags(cmd)
	cmd.Flags().BoolVarP(&dryRunFlag, "dry-run", "n", false, "build the manifest and show the preview without writing package.json")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		if !controller.IsReported(err) {
			fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
		}

		os.Exit(1)
	}
}
