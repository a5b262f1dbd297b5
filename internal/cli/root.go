// Package cli implements the reqcheck command tree.
package cli

import (
	"fmt"

	"github.com/ariel-frischer/reqcheck/internal/checker"
	"github.com/spf13/cobra"
)

// exitCode holds the process exit code produced by the last root-command
// run. Missing files are a reportable condition, not an error, so they
// flow through this code rather than through RunE's error return.
var exitCode = ExitSuccess

var rootCmd = &cobra.Command{
	Use:   "reqcheck",
	Short: "Verify that required project files exist",
	Long: `reqcheck verifies that the required project files (README.md and
.gitignore) exist in the current working directory.

Missing files are listed on stdout and the process exits nonzero, which
makes reqcheck suitable as a pre-commit hook or CI gate. When every
required file is present, reqcheck prints nothing and exits zero.`,
	Example: `  # Check the current directory
  reqcheck

  # Gate a CI step on the check
  reqcheck || echo "repository is missing required files"`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runCheck,
}

// runCheck executes the required-file check and records the exit code.
func runCheck(cmd *cobra.Command, _ []string) error {
	exitCode = ExitSuccess

	report, err := checker.CheckCurrentDir()
	if err != nil {
		return err
	}

	if !report.Passed {
		fmt.Fprint(cmd.OutOrStdout(), checker.FormatReport(report))
		exitCode = ExitMissingFiles
	}

	return nil
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		return ExitMissingFiles
	}

	return exitCode
}
