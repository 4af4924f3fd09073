package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/abhisek/repaso/internal/backup"
	"github.com/abhisek/repaso/internal/bank"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the build, dataset and backup format versions",
	Long: `Prints the repaso build version together with the question bank version
it validates against and the backup schema it reads and writes. Backups and
datasets from other versions are rejected by import and validate.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		if short, _ := cmd.Flags().GetBool("short"); short {
			fmt.Fprintln(out, buildVersion())
			return
		}
		fmt.Fprintln(out, "repaso", buildVersion())
		fmt.Fprintf(out, "  dataset  %s\n", bank.DatasetVersion)
		fmt.Fprintf(out, "  backup   schema v%d\n", backup.SchemaVersion)
	},
}

func init() {
	versionCmd.Flags().Bool("short", false, "Print only the build version")
}

// buildVersion prefers the ldflags value, then the module version recorded
// by go install.
func buildVersion() string {
	if version != "(devel)" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return version
}
