package gitcmd_test

import (
	"context"
	"errors"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitship/domain"
	"gitship/infrastructure/gitcmd"
	testdoubles "gitship/test"
)

// initializedDir returns a temp directory that already carries
// repository metadata.
func initializedDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	_, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)
	return dir
}

func pushSpec(dir string) domain.PushSpec {
	return domain.PushSpec{
		Dir:       dir,
		RemoteURL: "git@github.com:acme/site.git",
		Branch:    "main",
		Label:     "public",
	}
}

func TestPusherPush(t *testing.T) {
	t.Parallel()

	t.Run("should initialize a repository when metadata is missing", func(t *testing.T) {
		t.Parallel()

		// given
		runner := &testdoubles.SpyRunner{}
		pusher := gitcmd.NewPusher(runner)

		// when
		pusher.Push(context.Background(), pushSpec(t.TempDir()))

		// then
		assert.Equal(t, []string{
			"git init",
			"git add -A",
			"git commit -m Initial commit",
			"git remote remove origin",
			"git remote add origin git@github.com:acme/site.git",
			"git checkout -B main",
			"git add -A",
			"git commit -m Update site content",
			"git push -f origin main",
		}, runner.CommandLines())
	})

	t.Run("should not re-initialize an existing repository", func(t *testing.T) {
		t.Parallel()

		// given
		runner := &testdoubles.SpyRunner{}
		pusher := gitcmd.NewPusher(runner)

		// when
		pusher.Push(context.Background(), pushSpec(initializedDir(t)))

		// then
		lines := runner.CommandLines()
		assert.NotContains(t, lines, "git init")
		assert.Equal(t, "git remote remove origin", lines[0])
	})

	t.Run("should run every command in the source directory", func(t *testing.T) {
		t.Parallel()

		// given
		dir := initializedDir(t)
		runner := &testdoubles.SpyRunner{}
		pusher := gitcmd.NewPusher(runner)

		// when
		pusher.Push(context.Background(), pushSpec(dir))

		// then
		for _, call := range runner.Calls {
			assert.Equal(t, dir, call.Dir)
		}
	})

	t.Run("should continue when removing the remote fails", func(t *testing.T) {
		t.Parallel()

		// given
		runner := &testdoubles.SpyRunner{
			Results: map[string]testdoubles.RunResult{
				"git remote remove origin": {
					Stderr: "error: No such remote: 'origin'",
					Err:    errors.New("exit status 2"),
				},
			},
		}
		pusher := gitcmd.NewPusher(runner)

		// when
		pusher.Push(context.Background(), pushSpec(initializedDir(t)))

		// then
		assert.Contains(t, runner.CommandLines(), "git push -f origin main")
	})

	t.Run("should swallow a nothing-to-commit failure and still push", func(t *testing.T) {
		t.Parallel()

		// given
		runner := &testdoubles.SpyRunner{
			Results: map[string]testdoubles.RunResult{
				"git commit -m Update site content": {
					Stdout: "nothing to commit, working tree clean",
					Err:    errors.New("exit status 1"),
				},
			},
		}
		pusher := gitcmd.NewPusher(runner)

		// when
		pusher.Push(context.Background(), pushSpec(initializedDir(t)))

		// then
		assert.Contains(t, runner.CommandLines(), "git push -f origin main")
	})

	t.Run("should return normally when the push itself fails", func(t *testing.T) {
		t.Parallel()

		// given
		runner := &testdoubles.SpyRunner{
			Results: map[string]testdoubles.RunResult{
				"git push -f origin main": {
					Stderr: "fatal: Could not read from remote repository.",
					Err:    errors.New("exit status 128"),
				},
			},
		}
		pusher := gitcmd.NewPusher(runner)

		// when: must not panic or propagate
		pusher.Push(context.Background(), pushSpec(initializedDir(t)))

		// then
		assert.Contains(t, runner.CommandLines(), "git push -f origin main")
	})

	t.Run("should stop before pushing when adding the remote fails", func(t *testing.T) {
		t.Parallel()

		// given
		runner := &testdoubles.SpyRunner{
			Results: map[string]testdoubles.RunResult{
				"git remote add origin git@github.com:acme/site.git": {
					Err: errors.New("exit status 3"),
				},
			},
		}
		pusher := gitcmd.NewPusher(runner)

		// when
		pusher.Push(context.Background(), pushSpec(initializedDir(t)))

		// then
		assert.NotContains(t, runner.CommandLines(), "git push -f origin main")
	})

	t.Run("should stop when initialization fails", func(t *testing.T) {
		t.Parallel()

		// given
		runner := &testdoubles.SpyRunner{
			Results: map[string]testdoubles.RunResult{
				"git init": {Err: errors.New("exit status 1")},
			},
		}
		pusher := gitcmd.NewPusher(runner)

		// when
		pusher.Push(context.Background(), pushSpec(t.TempDir()))

		// then
		assert.Equal(t, []string{"git init"}, runner.CommandLines())
	})
}
