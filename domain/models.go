package domain

import "fmt"

// DeployConfig selects which repositories receive which directories.
type DeployConfig struct {
	Mode        Mode
	Branch      string
	PublicRepo  string // required for public-only and split
	PrivateRepo string // required for split
}

// CDNConfig carries the CDN settings from the configuration file.
// The push logic consumes only User and Org, to derive the repository
// owner; the remaining fields are loaded for completeness.
type CDNConfig struct {
	BaseURL string
	User    string
	Repo    string
	Branch  string
	Org     bool // User names an organization rather than an account
}

// RepoSpec identifies a repository to ensure on the hosting service.
type RepoSpec struct {
	Name    string
	Private bool
	Owner   string // empty means "the authenticated user", resolved at call time
}

// PushSpec describes a single force-push of a local directory.
type PushSpec struct {
	Dir       string // local source directory
	RemoteURL string
	Branch    string
	Label     string // human-readable tag for log lines ("public", "private")
}

// SSHRemoteURL returns the SSH clone URL for a GitHub repository.
func SSHRemoteURL(owner, name string) string {
	return fmt.Sprintf("git@github.com:%s/%s.git", owner, name)
}
