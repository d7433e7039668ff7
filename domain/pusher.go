package domain

import "context"

// Pusher publishes a local directory to a remote branch.
type Pusher interface {
	// Push is best-effort: failures are logged, never returned, so a
	// failed push cannot abort a multi-repository deployment. The two
	// targets in split mode are independent and the second push must
	// still be attempted when the first one fails.
	Push(ctx context.Context, spec PushSpec)
}
