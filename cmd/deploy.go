package cmd

import (
	"github.com/spf13/cobra"

	"gitship/application"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Publish the build output and/or source tree to GitHub",
	Long: `Publish the finished build according to deploy.yaml.

The command is a no-op unless the DEPLOY environment variable is
exactly "true", the build output directory exists, and a config file
is present. Push targets are created through the GitHub API when
missing; every push is a force-push that overwrites the remote branch.`,
	Example: `  DEPLOY=true gitship deploy
  DEPLOY=true gitship deploy --dir ./my-site --dry-run`,
	RunE: func(command *cobra.Command, _ []string) error {
		deployer := injectDeployer()
		return deployer.Deploy(command.Context(), application.Options{
			ProjectDir: projectDir,
			BuildDir:   buildDir,
			ConfigPath: configPath,
			DryRun:     dryRun,
		})
	},
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	rootCmd.AddCommand(deployCmd)
}
