// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Build information, set by main from -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// SetVersion records build information shown by --version and "version".
func SetVersion(v, c, d string) {
	if v != "" {
		Version = v
	}
	if c != "" {
		Commit = c
	}
	if d != "" {
		Date = d
	}
}

func versionTemplate() string {
	return fmt.Sprintf("%s %s\ncommit: %s\nbuilt: %s\n", appName, Version, Commit, Date)
}

func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", versionTemplate(), runtime.Version())
			return err
		},
	}
}
