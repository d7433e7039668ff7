// Package github implements the four-operation REST surface the
// deployment flow needs, on top of google/go-github.
package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	gh "github.com/google/go-github/v66/github"

	"gitship/domain"
)

// Client implements domain.GitHubAPI for github.com.
type Client struct {
	client *gh.Client
}

var _ domain.GitHubAPI = (*Client)(nil)

// NewClient creates an API client authenticated with the given token.
func NewClient(token string) domain.GitHubAPI {
	return &Client{client: gh.NewClient(nil).WithAuthToken(token)}
}

// AuthenticatedUser returns the login of the token's user.
func (c *Client) AuthenticatedUser(ctx context.Context) (string, error) {
	user, _, err := c.client.Users.Get(ctx, "")
	if err != nil {
		return "", fmt.Errorf("failed to get authenticated user: %w", err)
	}
	return user.GetLogin(), nil
}

// HasRepository reports whether owner/name exists. Only a 404 maps to
// (false, nil); permission errors, rate limits, and everything else are
// returned as errors so callers can fail fast instead of re-creating a
// repository they merely cannot see.
func (c *Client) HasRepository(ctx context.Context, owner, name string) (bool, error) {
	_, _, err := c.client.Repositories.Get(ctx, owner, name)
	if err == nil {
		return true, nil
	}
	if isNotFound(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to query repository %s/%s: %w", owner, name, err)
}

// CreateRepository creates a repository for the authenticated user.
func (c *Client) CreateRepository(ctx context.Context, name string, private bool) error {
	return c.create(ctx, "", name, private)
}

// CreateOrgRepository creates a repository under an organization.
func (c *Client) CreateOrgRepository(ctx context.Context, org, name string, private bool) error {
	return c.create(ctx, org, name, private)
}

func (c *Client) create(ctx context.Context, org, name string, private bool) error {
	_, _, err := c.client.Repositories.Create(ctx, org, &gh.Repository{
		Name:    &name,
		Private: &private,
	})
	if err != nil {
		return fmt.Errorf("failed to create repository %q: %w", name, err)
	}
	return nil
}

func isNotFound(err error) bool {
	var ghErr *gh.ErrorResponse
	return errors.As(err, &ghErr) &&
		ghErr.Response != nil &&
		ghErr.Response.StatusCode == http.StatusNotFound
}
