package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/ariel-frischer/reqcheck/internal/version"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var versionPlain bool

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"v"},
	Short:   "Display version information (v)",
	Long:    "Display version, commit, build date, and Go version information for reqcheck",
	Example: `  # Show version info
  reqcheck version

  # Plain output (for scripts)
  reqcheck version --plain`,
	Run: func(cmd *cobra.Command, _ []string) {
		if versionPlain {
			printPlainVersion(cmd.OutOrStdout())
			return
		}
		printStyledVersion(cmd.OutOrStdout())
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionPlain, "plain", false, "Plain output without formatting")
	rootCmd.AddCommand(versionCmd)
}

// printPlainVersion prints a simple version output for scripting.
func printPlainVersion(out io.Writer) {
	fmt.Fprintf(out, "reqcheck %s\n", version.Version)
	fmt.Fprintf(out, "commit: %s\n", version.Commit)
	fmt.Fprintf(out, "built: %s\n", version.BuildDate)
	fmt.Fprintf(out, "go: %s\n", runtime.Version())
	fmt.Fprintf(out, "platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
}

// printStyledVersion prints version info with label styling.
func printStyledVersion(out io.Writer) {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	fmt.Fprintf(out, "%s %s\n", cyan("reqcheck"), version.Version)
	fmt.Fprintf(out, "%s %s\n", yellow("  commit:"), truncateCommit(version.Commit))
	fmt.Fprintf(out, "%s %s\n", yellow("   built:"), version.BuildDate)
	fmt.Fprintf(out, "%s %s (%s/%s)\n", yellow("      go:"), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// truncateCommit shortens a full commit hash for display.
func truncateCommit(commit string) string {
	if len(commit) > 8 {
		return commit[:8]
	}
	return commit
}
