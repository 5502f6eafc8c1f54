package configloader_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yaklabco/cellflat/internal/configloader"
	"github.com/yaklabco/cellflat/pkg/projection"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir: t.TempDir(),
		IgnoreEnv:  true,
	})
	require.NoError(t, err)

	assert.False(t, cfg.ExcludeMarkup)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_ProjectFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".cellflat.yml"), "exclude_markup: true\nlog_level: debug\n")

	cfg, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir: dir,
		IgnoreEnv:  true,
	})
	require.NoError(t, err)

	assert.True(t, cfg.ExcludeMarkup)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_UpwardSearchStopsAtVCSRoot(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".cellflat.yml"), "log_level: warn\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	cfg, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir: nested,
		IgnoreEnv:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)

	// A VCS root between the working dir and the config hides it.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "a", ".git"), 0o755))
	cfg, err = configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir: nested,
		IgnoreEnv:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_ExplicitPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	explicit := filepath.Join(dir, "custom.yaml")
	writeFile(t, explicit, "exclude_markup: true\n")

	cfg, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir:   t.TempDir(),
		ExplicitPath: explicit,
		IgnoreEnv:    true,
	})
	require.NoError(t, err)
	assert.True(t, cfg.ExcludeMarkup)
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	t.Parallel()

	_, err := configloader.Load(context.Background(), configloader.LoadOptions{
		ExplicitPath: filepath.Join(t.TempDir(), "missing.yml"),
		IgnoreEnv:    true,
	})
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	// Not parallel because it modifies the environment.
	t.Setenv("CELLFLAT_EXCLUDE_MARKUP", "true")
	t.Setenv("CELLFLAT_LOG_LEVEL", "error")

	cfg, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir: t.TempDir(),
	})
	require.NoError(t, err)

	assert.True(t, cfg.ExcludeMarkup)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestLoad_EnvInvalidBool(t *testing.T) {
	t.Setenv("CELLFLAT_EXCLUDE_MARKUP", "maybe")

	_, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir: t.TempDir(),
	})
	assert.Error(t, err)
}

func TestConfig_SyntaxFor(t *testing.T) {
	t.Parallel()

	cfg := configloader.Default()
	assert.Equal(t, projection.DefaultSyntax, cfg.SyntaxFor("python"))

	cfg.LanguageOverrides = map[string]configloader.SyntaxOverride{
		"python": {LineStart: "##"},
	}
	got := cfg.SyntaxFor("python")
	assert.Equal(t, "##", got.LineStart)
	assert.Equal(t, projection.DefaultSyntax.BlockOpen, got.BlockOpen)
}

func TestLoad_ConfigFileWithOverrides(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".cellflat.yml"), `
language_overrides:
  sql:
    line_start: "#"
`)

	cfg, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir: dir,
		IgnoreEnv:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, "#", cfg.SyntaxFor("sql").LineStart)
}
