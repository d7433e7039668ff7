package cmd

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var (
	configPath string
	projectDir string
	buildDir   string
	dryRun     bool
	verbose    bool
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var rootCmd = &cobra.Command{
	Use:   "gitship",
	Short: "Post-build GitHub deployment for static-site projects",
	Long: `gitship publishes a finished static-site build to GitHub over SSH,
creating the target repositories through the GitHub API when they do
not exist yet.

It is meant to run right after your site build, gated by DEPLOY=true:

  DEPLOY=true gitship deploy

Deployment modes (deploy.yaml):
  none         do nothing (explicit opt-out)
  public-only  push the whole project to one public repository
  split        push the build output to a public repository and the
               full project to a private one`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if verbose {
			logger.SetLevel(logger.DebugLevel)
		}
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"Path to the config file (default: <dir>/deploy.yaml)")
	rootCmd.PersistentFlags().StringVarP(&projectDir, "dir", "d", ".",
		"Project root directory")
	rootCmd.PersistentFlags().StringVar(&buildDir, "build-dir", "",
		"Build output directory (default: <dir>/public)")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false,
		"Show what would be done without making changes")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")
}
