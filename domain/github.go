package domain

import "context"

// GitHubAPI is the narrow slice of the hosting API the deployment flow
// uses. Keeping it to four operations lets the orchestration logic run
// against a spy without network access.
type GitHubAPI interface {
	// AuthenticatedUser returns the login of the token's user.
	AuthenticatedUser(ctx context.Context) (string, error)

	// HasRepository reports whether owner/name exists. A "not found"
	// answer is (false, nil); any other query failure is returned as an
	// error and treated as fatal by callers.
	HasRepository(ctx context.Context, owner, name string) (bool, error)

	// CreateRepository creates a repository for the authenticated user.
	CreateRepository(ctx context.Context, name string, private bool) error

	// CreateOrgRepository creates a repository under an organization.
	CreateOrgRepository(ctx context.Context, org, name string, private bool) error
}

// APIFactory builds a GitHubAPI from an auth token. The token only
// becomes available mid-flow (after preflight), so the client is
// constructed lazily through this factory.
type APIFactory func(token string) GitHubAPI
