package terminal

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorEnabled(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		mode    ColorMode
		isTTY   bool
		want    bool
	}{
		{
			name:    "always overrides NO_COLOR",
			mode:    ColorAlways,
			envVars: map[string]string{"NO_COLOR": "1"},
			want:    true,
		},
		{
			name:    "never overrides CLICOLOR_FORCE",
			mode:    ColorNever,
			envVars: map[string]string{"CLICOLOR_FORCE": "1", "TERM": "xterm"},
			isTTY:   true,
			want:    false,
		},
		{
			name:    "CLICOLOR_FORCE enables color on a pipe",
			envVars: map[string]string{"CLICOLOR_FORCE": "1"},
			want:    true,
		},
		{
			name:    "empty NO_COLOR still disables",
			envVars: map[string]string{"NO_COLOR": "", "TERM": "xterm-256color"},
			isTTY:   true,
			want:    false,
		},
		{
			name:    "color terminal",
			envVars: map[string]string{"TERM": "xterm-256color"},
			isTTY:   true,
			want:    true,
		},
		{
			name:    "pipe gets no color",
			envVars: map[string]string{"TERM": "xterm-256color"},
			isTTY:   false,
			want:    false,
		},
		{
			name:    "dumb terminal",
			envVars: map[string]string{"TERM": "dumb"},
			isTTY:   true,
			want:    false,
		},
		{
			name:    "CI disables color",
			envVars: map[string]string{"TERM": "xterm", "GITHUB_ACTIONS": "true"},
			isTTY:   true,
			want:    false,
		},
		{
			name:    "CLICOLOR=0 disables color",
			envVars: map[string]string{"TERM": "screen", "CLICOLOR": "0"},
			isTTY:   true,
			want:    false,
		},
		{
			name:    "CLICOLOR=1 keeps color",
			envVars: map[string]string{"TERM": "tmux-256color", "CLICOLOR": "1"},
			isTTY:   true,
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCleanEnv(t, tt.envVars)
			assert.Equal(t, tt.want, ColorEnabled(tt.mode, tt.isTTY))
		})
	}
}

func TestTermSupportsColor(t *testing.T) {
	assert.True(t, termSupportsColor("xterm"))
	assert.True(t, termSupportsColor(" XTERM-256COLOR "))
	assert.False(t, termSupportsColor("xtermish"))
	assert.False(t, termSupportsColor("dumb"))
	assert.False(t, termSupportsColor(""))
}

func TestColorModeString(t *testing.T) {
	assert.Equal(t, "auto", ColorAuto.String())
	assert.Equal(t, "always", ColorAlways.String())
	assert.Equal(t, "never", ColorNever.String())
}

func TestStreamColorEnabledNilFile(t *testing.T) {
	setupCleanEnv(t, map[string]string{"TERM": "xterm"})
	assert.False(t, StreamColorEnabled(ColorAuto, nil))
	assert.False(t, IsTerminal(nil))
}

func TestStreamColorEnabledRegularFile(t *testing.T) {
	setupCleanEnv(t, map[string]string{"TERM": "xterm"})

	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	assert.False(t, StreamColorEnabled(ColorAuto, f))
	assert.True(t, StreamColorEnabled(ColorAlways, f))
}
