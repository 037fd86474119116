// Package terminal answers the questions the CLI needs about its
// environment: whether a stream is a TTY, whether it runs under CI, and
// whether colored output should be produced.
package terminal

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// ciEnvVars contains common CI environment variables
var ciEnvVars = []string{
	"CI",                     // Generic CI indicator
	"CONTINUOUS_INTEGRATION", // Generic CI indicator
	"GITHUB_ACTIONS",         // GitHub Actions
	"GITLAB_CI",              // GitLab CI
	"JENKINS_URL",            // Jenkins
	"BUILDKITE",              // Buildkite
	"CIRCLECI",               // Circle CI
	"TF_BUILD",               // Azure DevOps
}

// IsTerminal reports whether f is connected to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// StdinHasData reports whether stdin is redirected from a pipe or file,
// i.e. whether reading it will not block on a user.
func StdinHasData() bool {
	return !IsTerminal(os.Stdin)
}

// IsCIEnvironment checks if the current environment is a CI/CD system
func IsCIEnvironment() bool {
	for _, envVar := range ciEnvVars {
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}
		// CI=false and friends are explicit opt-outs
		if envVar == "CI" {
			return !isFalsy(value)
		}
		return true
	}
	return false
}

func isTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

func isFalsy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "0", "false", "no":
		return true
	default:
		return false
	}
}
