package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gitship/domain"
)

func TestParseMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected domain.Mode
		ok       bool
	}{
		{
			name:     "should parse none",
			input:    "none",
			expected: domain.ModeNone,
			ok:       true,
		},
		{
			name:     "should parse public-only",
			input:    "public-only",
			expected: domain.ModePublicOnly,
			ok:       true,
		},
		{
			name:     "should parse split",
			input:    "split",
			expected: domain.ModeSplit,
			ok:       true,
		},
		{
			name:  "should reject empty string",
			input: "",
		},
		{
			name:  "should reject unknown mode",
			input: "everything",
		},
		{
			name:  "should reject case variants",
			input: "Split",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// when
			mode, ok := domain.ParseMode(tt.input)

			// then
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, mode)
			}
		})
	}
}

func TestModeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "none", domain.ModeNone.String())
	assert.Equal(t, "public-only", domain.ModePublicOnly.String())
	assert.Equal(t, "split", domain.ModeSplit.String())
}

func TestSSHRemoteURL(t *testing.T) {
	t.Parallel()

	// when
	url := domain.SSHRemoteURL("acme", "site")

	// then
	assert.Equal(t, "git@github.com:acme/site.git", url)
}
