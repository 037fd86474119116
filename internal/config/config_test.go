package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/decodeck/decodeck/internal/safefileio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	content := []byte(`
[chain]
max_depth = 4

[output]
format = "json"
color = "never"

[input]
max_size = "1MB"

[log]
level = "debug"
file = "/tmp/decodeck.json"
`)
	cfg, err := Parse(content)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Chain.MaxDepth)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "never", cfg.Output.Color)
	assert.Equal(t, "1MB", cfg.Input.MaxSize)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/decodeck.json", cfg.Log.File)
}

func TestParseAppliesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`[output]
format = "cbor"
`))
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Chain.MaxDepth)
	assert.Equal(t, "cbor", cfg.Output.Format)
	assert.Equal(t, DefaultColor, cfg.Output.Color)
	assert.Equal(t, DefaultMaxSize, cfg.Input.MaxSize)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)

	empty, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), empty)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		field   string
	}{
		{name: "negative depth", content: "[chain]\nmax_depth = -1\n", field: "chain.max_depth"},
		{name: "unknown format", content: "[output]\nformat = \"xml\"\n", field: "output.format"},
		{name: "unknown color", content: "[output]\ncolor = \"sometimes\"\n", field: "output.color"},
		{name: "bad size", content: "[input]\nmax_size = \"lots\"\n", field: "input.max_size"},
		{name: "bad level", content: "[log]\nlevel = \"chatty\"\n", field: "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestParseRejectsSyntaxAndUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("[chain\nmax_depth = 3"))
	assert.Error(t, err)

	_, err = Parse([]byte("[chain]\nmax_dpeth = 3\n"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}

func TestResolvePath(t *testing.T) {
	env := map[string]string{EnvConfigPath: "/etc/decodeck.toml"}
	getenv := func(key string) string { return env[key] }
	noEnv := func(string) string { return "" }

	path, required := ResolvePath("custom.toml", getenv)
	assert.Equal(t, "custom.toml", path)
	assert.True(t, required)

	path, required = ResolvePath("", getenv)
	assert.Equal(t, "/etc/decodeck.toml", path)
	assert.True(t, required)

	path, required = ResolvePath("", noEnv)
	assert.Equal(t, DefaultConfigFile, path)
	assert.False(t, required)
}

func TestLoad(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	dir := t.TempDir()
	t.Chdir(dir)

	// no default file present
	cfg, path, err := Load("")
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, Default(), cfg)

	require.NoError(t, os.WriteFile(DefaultConfigFile, []byte("[chain]\nmax_depth = 3\n"), 0o600))
	cfg, path, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfigFile, path)
	assert.Equal(t, 3, cfg.Chain.MaxDepth)

	envFile := filepath.Join(dir, "env.toml")
	require.NoError(t, os.WriteFile(envFile, []byte("[chain]\nmax_depth = 7\n"), 0o600))
	t.Setenv(EnvConfigPath, envFile)
	cfg, path, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, envFile, path)
	assert.Equal(t, 7, cfg.Chain.MaxDepth)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[output]\nformat = \"yaml\"\n"), 0o600))

	_, _, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), path)
}

func TestLoadRejectsNonRegularAndOversizedFiles(t *testing.T) {
	dir := t.TempDir()
	_, _, err := Load(dir)
	assert.ErrorIs(t, err, safefileio.ErrInvalidFilePath)

	big := filepath.Join(dir, "big.toml")
	padding := "# " + strings.Repeat("x", maxConfigSize) + "\n"
	require.NoError(t, os.WriteFile(big, []byte(padding), 0o600))
	_, _, err = Load(big)
	assert.ErrorIs(t, err, safefileio.ErrFileTooLarge)
}
