package input

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateGitHubUsername(t *testing.T) {
	t.Run("plain usernames pass", func(t *testing.T) {
		for _, name := range []string{"octocat", "a", "mona-lisa", "user123", "1a"} {
			got, err := ValidateGitHubUsername(name)
			require.NoError(t, err, name)
			assert.Equal(t, name, got)
		}
	})

	t.Run("profile URLs reduce to the username", func(t *testing.T) {
		for _, url := range []string{
			"https://github.com/octocat",
			"http://github.com/octocat",
			"github.com/octocat/",
			"HTTPS://GITHUB.COM/octocat",
		} {
			got, err := ValidateGitHubUsername(url)
			require.NoError(t, err, url)
			assert.Equal(t, "octocat", got)
		}
	})

	t.Run("invalid shapes rejected", func(t *testing.T) {
		for _, name := range []string{"", "-octocat", "octocat-", "mona--lisa", "has space", "semi;colon"} {
			_, err := ValidateGitHubUsername(name)
			assert.Error(t, err, "%q should be rejected", name)
		}
	})

	t.Run("length cap", func(t *testing.T) {
		_, err := ValidateGitHubUsername(strings.Repeat("a", 40))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "39")

		_, err = ValidateGitHubUsername(strings.Repeat("a", 39))
		assert.NoError(t, err)
	})
}

func TestValidateJobText(t *testing.T) {
	_, err := ValidateJobText("")
	assert.Error(t, err)

	_, err = ValidateJobText("too short")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too short")

	got, err := ValidateJobText("  We need a backend engineer with Go experience.  ")
	require.NoError(t, err)
	assert.Equal(t, "We need a backend engineer with Go experience.", got)
}

func TestValidateResumeText(t *testing.T) {
	// Resume text is optional: empty input is not an error.
	got, err := ValidateResumeText("   ")
	require.NoError(t, err)
	assert.Equal(t, "", got)

	_, err = ValidateResumeText("too short")
	assert.Error(t, err)

	got, err = ValidateResumeText("Ten years of experience with Python and Django.")
	require.NoError(t, err)
	assert.NotEmpty(t, got)
}
