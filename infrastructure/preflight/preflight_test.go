package preflight_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitship/infrastructure/preflight"
	testdoubles "gitship/test"
)

// homeWithKey returns a temp home directory containing ~/.ssh/<keyName>.
func homeWithKey(t *testing.T, keyName string) string {
	t.Helper()

	home := t.TempDir()
	sshDir := filepath.Join(home, ".ssh")
	require.NoError(t, os.MkdirAll(sshDir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(sshDir, keyName), []byte("key"), 0o600))
	return home
}

func TestCheckerVerify(t *testing.T) {
	t.Parallel()

	t.Run("should pass when all tools and the SSH key are present", func(t *testing.T) {
		t.Parallel()

		// given
		runner := &testdoubles.SpyRunner{}
		checker := preflight.NewCheckerWithHome(runner, homeWithKey(t, "id_ed25519"))

		// when
		err := checker.Verify(context.Background())

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"git", "gh"}, runner.LookPathCalls)
		assert.Equal(t, []string{"gh auth status"}, runner.CommandLines())
	})

	t.Run("should fail when git is not installed", func(t *testing.T) {
		t.Parallel()

		// given
		runner := &testdoubles.SpyRunner{
			MissingBinaries: map[string]bool{"git": true},
		}
		checker := preflight.NewCheckerWithHome(runner, homeWithKey(t, "id_rsa"))

		// when
		err := checker.Verify(context.Background())

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "git is not installed")
		assert.Empty(t, runner.Calls, "no subprocess should run after a missing tool")
	})

	t.Run("should fail when gh is not installed", func(t *testing.T) {
		t.Parallel()

		// given
		runner := &testdoubles.SpyRunner{
			MissingBinaries: map[string]bool{"gh": true},
		}
		checker := preflight.NewCheckerWithHome(runner, homeWithKey(t, "id_rsa"))

		// when
		err := checker.Verify(context.Background())

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "gh is not installed")
	})

	t.Run("should fail when gh has no authenticated session", func(t *testing.T) {
		t.Parallel()

		// given
		runner := &testdoubles.SpyRunner{
			Results: map[string]testdoubles.RunResult{
				"gh auth status": {
					Stderr: "You are not logged into any GitHub hosts.",
					Err:    errors.New("exit status 1"),
				},
			},
		}
		checker := preflight.NewCheckerWithHome(runner, homeWithKey(t, "id_rsa"))

		// when
		err := checker.Verify(context.Background())

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "gh is not authenticated")
		assert.Contains(t, err.Error(), "gh auth login")
	})

	t.Run("should fail when no SSH private key exists", func(t *testing.T) {
		t.Parallel()

		// given
		runner := &testdoubles.SpyRunner{}
		checker := preflight.NewCheckerWithHome(runner, t.TempDir())

		// when
		err := checker.Verify(context.Background())

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no SSH private key found")
	})

	t.Run("should accept any conventional key name", func(t *testing.T) {
		t.Parallel()

		for _, keyName := range []string{"id_ed25519", "id_rsa", "id_ecdsa"} {
			// given
			runner := &testdoubles.SpyRunner{}
			checker := preflight.NewCheckerWithHome(runner, homeWithKey(t, keyName))

			// when
			err := checker.Verify(context.Background())

			// then
			require.NoError(t, err, keyName)
		}
	})
}
