// Package shell implements domain.Runner on top of os/exec. It is the
// only place in the codebase that spawns real subprocesses.
package shell

import (
	"bytes"
	"context"
	"os"
	"os/exec"

	logger "github.com/sirupsen/logrus"

	"gitship/domain"
)

// Runner executes external commands synchronously, capturing output.
type Runner struct{}

var _ domain.Runner = (*Runner)(nil)

// NewRunner creates a subprocess runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Run executes name with args in dir and waits for completion. No
// timeout is applied beyond whatever deadline ctx carries.
func (r *Runner) Run(
	ctx context.Context,
	dir, name string,
	args ...string,
) (string, string, error) {
	logger.Debugf("exec: %s %v (dir=%s)", name, args, dir)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Env = os.Environ()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// LookPath reports whether a binary is installed.
func (r *Runner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
