package input

import (
	"fmt"
	"regexp"
	"strings"
)

// GitHub username rules: 1-39 alphanumeric-or-hyphen characters, no
// leading/trailing hyphen, no consecutive hyphens.
var (
	githubUserPattern = regexp.MustCompile(`^[a-zA-Z0-9](?:-?[a-zA-Z0-9])*$`)
	githubURLPattern  = regexp.MustCompile(`(?i)^(?:https?://)?github\.com/([a-zA-Z0-9][a-zA-Z0-9-]*[a-zA-Z0-9]?)/?$`)
)

const maxGitHubUserLength = 39

// Minimum meaningful lengths in characters.
const (
	minJobTextLength    = 20
	minResumeTextLength = 20
)

// ValidateGitHubUsername cleans and validates a GitHub username. A
// profile URL like https://github.com/octocat is reduced to the
// username.
func ValidateGitHubUsername(username string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", fmt.Errorf("github_user: a github username is required")
	}

	if m := githubURLPattern.FindStringSubmatch(username); m != nil {
		username = m[1]
	}

	if len(username) > maxGitHubUserLength {
		return "", fmt.Errorf("github_user: username must be at most %d characters (got %d)",
			maxGitHubUserLength, len(username))
	}
	if !githubUserPattern.MatchString(username) {
		return "", fmt.Errorf("github_user: username must contain only alphanumeric characters or hyphens, " +
			"cannot start or end with a hyphen, and cannot have consecutive hyphens")
	}
	return username, nil
}

// ValidateJobText cleans and validates job description text.
func ValidateJobText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("job_text: job description text is required")
	}
	if len(text) < minJobTextLength {
		return "", fmt.Errorf("job_text: job description is too short (minimum %d characters)", minJobTextLength)
	}
	return text, nil
}

// ValidateResumeText cleans and validates optional resume text. An
// empty value is fine, the resume is optional.
func ValidateResumeText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", nil
	}
	if len(text) < minResumeTextLength {
		return "", fmt.Errorf("resume_text: resume text is too short (minimum %d characters)", minResumeTextLength)
	}
	return text, nil
}
