package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridden at build time via -ldflags "-X gitship/cmd.version=...".
//
//nolint:gochecknoglobals // build-time variable
var version = "dev"

//nolint:gochecknoglobals // required by cobra CLI pattern
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the gitship version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("gitship version %s\n", version)
	},
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	rootCmd.AddCommand(versionCmd)
}
