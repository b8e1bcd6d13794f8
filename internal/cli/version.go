package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version information, set at build time via ldflags
var (
	version = "dev"
	commit  = "unknown"
)

// NewVersionCmd creates the version command
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "solbuild %s (%s)\n", version, commit)
		},
	}
}
