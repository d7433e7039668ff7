// Package gitcmd publishes directories to Git remotes by shelling out
// to the git binary. Every deployment is a destructive overwrite of the
// remote branch tip: no diffing, no conflict detection, no merge.
package gitcmd

import (
	"context"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	logger "github.com/sirupsen/logrus"

	"gitship/domain"
)

const (
	remoteName           = "origin"
	initialCommitMessage = "Initial commit"
	updateCommitMessage  = "Update site content"
)

// Pusher implements domain.Pusher over the git CLI.
type Pusher struct {
	runner domain.Runner
}

var _ domain.Pusher = (*Pusher)(nil)

// NewPusher creates a pusher using the given runner.
func NewPusher(runner domain.Runner) *Pusher {
	return &Pusher{runner: runner}
}

// Push force-pushes spec.Dir to spec.Branch on spec.RemoteURL. Failures
// are logged and swallowed: the targets of a split deployment are
// independent, so a broken push must not stop the next one.
func (p *Pusher) Push(ctx context.Context, spec domain.PushSpec) {
	logger.Infof("[%s] Deploying %s to %s (branch %s)", spec.Label, spec.Dir, spec.RemoteURL, spec.Branch)

	if !isRepository(spec.Dir) {
		if err := p.initRepository(ctx, spec.Dir); err != nil {
			logger.Errorf("[%s] Failed to initialize repository in %s: %v", spec.Label, spec.Dir, err)
			return
		}
		logger.Infof("[%s] Initialized new repository in %s", spec.Label, spec.Dir)
	}

	// The previous origin may point anywhere; always start fresh.
	if _, _, err := p.runner.Run(ctx, spec.Dir, "git", "remote", "remove", remoteName); err != nil {
		logger.Debugf("[%s] No existing remote to remove: %v", spec.Label, err)
	}
	if err := p.git(ctx, spec, "remote", "add", remoteName, spec.RemoteURL); err != nil {
		return
	}

	if err := p.git(ctx, spec, "checkout", "-B", spec.Branch); err != nil {
		return
	}

	p.commitAll(ctx, spec)

	if _, stderr, err := p.runner.Run(ctx, spec.Dir, "git", "push", "-f", remoteName, spec.Branch); err != nil {
		logger.Errorf("[%s] Failed to push to %s: %v (%s)", spec.Label, spec.RemoteURL, err, strings.TrimSpace(stderr))
		return
	}

	logger.Infof("[%s] Pushed %s to %s", spec.Label, spec.Branch, spec.RemoteURL)
}

// git runs a single git command, logging failures.
func (p *Pusher) git(ctx context.Context, spec domain.PushSpec, args ...string) error {
	if _, stderr, err := p.runner.Run(ctx, spec.Dir, "git", args...); err != nil {
		logger.Errorf("[%s] git %s failed: %v (%s)", spec.Label, strings.Join(args, " "), err, strings.TrimSpace(stderr))
		return err
	}
	return nil
}

// initRepository sets up repository metadata with an initial commit so
// that branch and remote operations have something to work on.
func (p *Pusher) initRepository(ctx context.Context, dir string) error {
	for _, args := range [][]string{
		{"init"},
		{"add", "-A"},
		{"commit", "-m", initialCommitMessage},
	} {
		if _, stderr, err := p.runner.Run(ctx, dir, "git", args...); err != nil {
			logger.Debugf("git %s: %s", strings.Join(args, " "), strings.TrimSpace(stderr))
			return err
		}
	}
	return nil
}

// commitAll stages and commits whatever changed since the last push.
// Unchanged content makes the commit fail with "nothing to commit";
// that is the expected steady state, not an error, so commit failures
// never abort the push. Other commit failures (broken author identity,
// hooks) are surfaced in the log but stay non-fatal too.
func (p *Pusher) commitAll(ctx context.Context, spec domain.PushSpec) {
	if _, stderr, err := p.runner.Run(ctx, spec.Dir, "git", "add", "-A"); err != nil {
		logger.Warnf("[%s] Failed to stage files: %v (%s)", spec.Label, err, strings.TrimSpace(stderr))
	}

	stdout, stderr, err := p.runner.Run(ctx, spec.Dir, "git", "commit", "-m", updateCommitMessage)
	if err == nil {
		return
	}
	if strings.Contains(stdout, "nothing to commit") || strings.Contains(stderr, "nothing to commit") {
		logger.Debugf("[%s] Nothing to commit", spec.Label)
		return
	}
	logger.Warnf("[%s] Commit failed: %v (%s)", spec.Label, err, strings.TrimSpace(stderr))
}

// isRepository reports whether dir already carries repository metadata.
// go-git handles the non-directory .git layouts (worktrees, submodules)
// that a plain stat on .git would misread.
func isRepository(dir string) bool {
	_, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{})
	return err == nil
}
