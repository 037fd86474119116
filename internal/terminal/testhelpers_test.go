package terminal

import (
	"os"
	"testing"
)

// setupCleanEnv controls every environment variable the package reads and
// sets only the specified ones.
func setupCleanEnv(t *testing.T, envVars map[string]string) {
	t.Helper()

	// NO_COLOR is checked for existence: t.Setenv registers the restore,
	// then the variable is removed when not asked for.
	value, specified := envVars["NO_COLOR"]
	t.Setenv("NO_COLOR", value)
	if !specified {
		if err := os.Unsetenv("NO_COLOR"); err != nil {
			t.Fatalf("unset NO_COLOR: %v", err)
		}
	}

	valueCheckedVars := append([]string{"CLICOLOR", "CLICOLOR_FORCE", "TERM"}, ciEnvVars...)
	for _, v := range valueCheckedVars {
		t.Setenv(v, envVars[v])
	}
}
