// Package testdoubles provides test doubles (spies, stubs, dummies) for domain
// interfaces. These are hand-crafted implementations, no mock frameworks.
package testdoubles

import (
	"context"
	"fmt"
	"strings"

	"gitship/domain"
)

// ---------------------------------------------------------------------------
// SpyRunner
// ---------------------------------------------------------------------------

// RunCall records a single subprocess invocation.
type RunCall struct {
	Dir  string
	Name string
	Args []string
}

// CommandLine renders the call the way a shell user would type it.
func (c RunCall) CommandLine() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// RunResult configures the outcome of a spied subprocess invocation.
type RunResult struct {
	Stdout string
	Stderr string
	Err    error
}

// SpyRunner implements domain.Runner without spawning anything.
// Configure Results by full command line (e.g. "gh auth token") for the
// invocations your test cares about; everything else succeeds with empty
// output. Inspect Calls to verify what was invoked, and in which order.
type SpyRunner struct {
	Calls   []RunCall
	Results map[string]RunResult

	// MissingBinaries makes LookPath fail for the named binaries.
	MissingBinaries map[string]bool
	LookPathCalls   []string
}

var _ domain.Runner = (*SpyRunner)(nil)

func (r *SpyRunner) Run(
	_ context.Context,
	dir, name string,
	args ...string,
) (string, string, error) {
	call := RunCall{Dir: dir, Name: name, Args: args}
	r.Calls = append(r.Calls, call)

	if r.Results != nil {
		if res, ok := r.Results[call.CommandLine()]; ok {
			return res.Stdout, res.Stderr, res.Err
		}
	}
	return "", "", nil
}

func (r *SpyRunner) LookPath(name string) (string, error) {
	r.LookPathCalls = append(r.LookPathCalls, name)
	if r.MissingBinaries[name] {
		return "", fmt.Errorf("executable file not found in $PATH: %s", name)
	}
	return "/usr/bin/" + name, nil
}

// CommandLines returns every recorded invocation as a shell-style string.
func (r *SpyRunner) CommandLines() []string {
	lines := make([]string, 0, len(r.Calls))
	for _, call := range r.Calls {
		lines = append(lines, call.CommandLine())
	}
	return lines
}

// ---------------------------------------------------------------------------
// SpyGitHubAPI
// ---------------------------------------------------------------------------

// UserCreateCall records a create-for-authenticated-user invocation.
type UserCreateCall struct {
	Name    string
	Private bool
}

// OrgCreateCall records a create-in-organization invocation.
type OrgCreateCall struct {
	Org     string
	Name    string
	Private bool
}

// SpyGitHubAPI implements domain.GitHubAPI as a configurable spy.
// Existing repositories are keyed "owner/name"; created repositories are
// added to the set, so repeated ensure calls behave like the real API.
type SpyGitHubAPI struct {
	Login     string
	LoginErr  error
	UserCalls int

	Existing map[string]bool
	QueryErr error // returned by HasRepository for every lookup
	Queries  []string

	UserCreates []UserCreateCall
	OrgCreates  []OrgCreateCall
	CreateErr   error
}

var _ domain.GitHubAPI = (*SpyGitHubAPI)(nil)

func (a *SpyGitHubAPI) AuthenticatedUser(_ context.Context) (string, error) {
	a.UserCalls++
	if a.LoginErr != nil {
		return "", a.LoginErr
	}
	return a.Login, nil
}

func (a *SpyGitHubAPI) HasRepository(
	_ context.Context,
	owner, name string,
) (bool, error) {
	key := owner + "/" + name
	a.Queries = append(a.Queries, key)
	if a.QueryErr != nil {
		return false, a.QueryErr
	}
	return a.Existing[key], nil
}

func (a *SpyGitHubAPI) CreateRepository(
	_ context.Context,
	name string,
	private bool,
) error {
	a.UserCreates = append(a.UserCreates, UserCreateCall{Name: name, Private: private})
	if a.CreateErr != nil {
		return a.CreateErr
	}
	a.markExisting(a.Login + "/" + name)
	return nil
}

func (a *SpyGitHubAPI) CreateOrgRepository(
	_ context.Context,
	org, name string,
	private bool,
) error {
	a.OrgCreates = append(a.OrgCreates, OrgCreateCall{Org: org, Name: name, Private: private})
	if a.CreateErr != nil {
		return a.CreateErr
	}
	a.markExisting(org + "/" + name)
	return nil
}

func (a *SpyGitHubAPI) markExisting(key string) {
	if a.Existing == nil {
		a.Existing = make(map[string]bool)
	}
	a.Existing[key] = true
}

// ---------------------------------------------------------------------------
// SpyPusher
// ---------------------------------------------------------------------------

// SpyPusher implements domain.Pusher and records every push request.
type SpyPusher struct {
	Pushes []domain.PushSpec
}

var _ domain.Pusher = (*SpyPusher)(nil)

func (p *SpyPusher) Push(_ context.Context, spec domain.PushSpec) {
	p.Pushes = append(p.Pushes, spec)
}

// ---------------------------------------------------------------------------
// StubEnvironmentChecker
// ---------------------------------------------------------------------------

// StubEnvironmentChecker implements domain.EnvironmentChecker with a
// canned result.
type StubEnvironmentChecker struct {
	VerifyErr   error
	VerifyCalls int
}

var _ domain.EnvironmentChecker = (*StubEnvironmentChecker)(nil)

func (c *StubEnvironmentChecker) Verify(_ context.Context) error {
	c.VerifyCalls++
	return c.VerifyErr
}

// ---------------------------------------------------------------------------
// StubTokenSource
// ---------------------------------------------------------------------------

// StubTokenSource implements domain.TokenSource with a canned token.
type StubTokenSource struct {
	TokenValue string
	TokenErr   error
	TokenCalls int
}

var _ domain.TokenSource = (*StubTokenSource)(nil)

func (s *StubTokenSource) Token(_ context.Context) (string, error) {
	s.TokenCalls++
	if s.TokenErr != nil {
		return "", s.TokenErr
	}
	return s.TokenValue, nil
}
