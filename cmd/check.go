package cmd

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that git, gh, and an SSH key are ready for deployment",
	Long: `Run the same environment checks a deployment starts with:
git installed, gh installed, gh authenticated, and an SSH private key
present. Useful to debug a failing deploy without touching anything.`,
	RunE: func(command *cobra.Command, _ []string) error {
		if err := injectChecker().Verify(command.Context()); err != nil {
			return err
		}
		logger.Info("Environment looks good, ready to deploy")
		return nil
	},
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	rootCmd.AddCommand(checkCmd)
}
