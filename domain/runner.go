package domain

import "context"

// Runner abstracts subprocess execution so that the deployment flow can
// be exercised in tests with a fake that records invocations instead of
// spawning real tools.
type Runner interface {
	// Run executes a command in dir (empty means the current directory)
	// and returns the captured stdout and stderr.
	Run(ctx context.Context, dir, name string, args ...string) (stdout, stderr string, err error)

	// LookPath reports where a binary lives on PATH, or an error when it
	// is not installed.
	LookPath(name string) (string, error)
}

// TokenSource produces a short-lived authentication token for the
// hosting service.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// EnvironmentChecker verifies that the external tools the deployment
// flow shells out to are installed and usable.
type EnvironmentChecker interface {
	Verify(ctx context.Context) error
}
