// Package preflight verifies the external environment before any
// deployment work starts. Every failure here is fatal and immediate;
// there is no partial success.
package preflight

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gitship/domain"
)

// sshKeyNames are the conventional private key file names checked under
// the user's SSH directory. One of them must exist since pushes go over
// SSH remotes.
var sshKeyNames = []string{"id_ed25519", "id_rsa", "id_ecdsa"}

// Checker implements domain.EnvironmentChecker against the real
// environment: PATH lookups, the gh session, and the SSH directory.
type Checker struct {
	runner  domain.Runner
	homeDir string
}

var _ domain.EnvironmentChecker = (*Checker)(nil)

// NewChecker creates a checker for the current user's environment.
func NewChecker(runner domain.Runner) *Checker {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return &Checker{runner: runner, homeDir: home}
}

// NewCheckerWithHome creates a checker with an explicit home directory.
func NewCheckerWithHome(runner domain.Runner, homeDir string) *Checker {
	return &Checker{runner: runner, homeDir: homeDir}
}

// Verify checks that git and gh are installed, that gh has an
// authenticated session, and that an SSH private key exists.
func (c *Checker) Verify(ctx context.Context) error {
	if _, err := c.runner.LookPath("git"); err != nil {
		return fmt.Errorf("git is not installed: %w; install it from https://git-scm.com", err)
	}

	if _, err := c.runner.LookPath("gh"); err != nil {
		return fmt.Errorf("gh is not installed: %w; install it from https://cli.github.com", err)
	}

	if _, stderr, err := c.runner.Run(ctx, "", "gh", "auth", "status"); err != nil {
		return fmt.Errorf(
			"gh is not authenticated (%s): %w; run 'gh auth login' first",
			strings.TrimSpace(stderr), err,
		)
	}

	if !c.hasSSHKey() {
		return fmt.Errorf(
			"no SSH private key found in %s (looked for %s); generate one with 'ssh-keygen -t ed25519' and add it to your GitHub account",
			filepath.Join(c.homeDir, ".ssh"), strings.Join(sshKeyNames, ", "),
		)
	}

	return nil
}

func (c *Checker) hasSSHKey() bool {
	for _, name := range sshKeyNames {
		if _, err := os.Stat(filepath.Join(c.homeDir, ".ssh", name)); err == nil {
			return true
		}
	}
	return false
}
