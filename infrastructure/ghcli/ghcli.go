// Package ghcli wraps the GitHub CLI. The tool is used only for
// authentication: checking the session and minting a short-lived token.
// Credential storage stays entirely with gh itself.
package ghcli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gitship/domain"
)

const binary = "gh"

// CLI resolves authentication state through the gh binary.
type CLI struct {
	runner domain.Runner
}

var _ domain.TokenSource = (*CLI)(nil)

// New creates a CLI wrapper using the given runner.
func New(runner domain.Runner) *CLI {
	return &CLI{runner: runner}
}

// Token returns the token of the current gh session via `gh auth token`.
// The session can go stale between the preflight check and this call;
// that race is accepted and surfaces here as a fatal error.
func (c *CLI) Token(ctx context.Context) (string, error) {
	stdout, stderr, err := c.runner.Run(ctx, "", binary, "auth", "token")
	if err != nil {
		return "", fmt.Errorf(
			"failed to get a token from gh (%s): %w; run 'gh auth login' and retry",
			strings.TrimSpace(stderr), err,
		)
	}

	token := strings.TrimSpace(stdout)
	if token == "" {
		return "", errors.New("gh returned an empty token; run 'gh auth login' and retry")
	}

	return token, nil
}

// AuthStatus reports whether gh has an authenticated session.
func (c *CLI) AuthStatus(ctx context.Context) error {
	_, stderr, err := c.runner.Run(ctx, "", binary, "auth", "status")
	if err != nil {
		return fmt.Errorf(
			"gh is not authenticated (%s): %w; run 'gh auth login' first",
			strings.TrimSpace(stderr), err,
		)
	}
	return nil
}
