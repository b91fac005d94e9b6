package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "minijinja.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("data", "", "context data file")
	flags.String("name", "", "context name")
	flags.Bool("strict", false, "strict lookups")
	flags.Bool("debug", false, "debug rendering")
	return flags
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	// Explicit but missing config files surface the read error.
	require.Error(t, err)

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultName, cfg.Name)
	assert.False(t, cfg.Strict)
	assert.False(t, cfg.Debug)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "name: report\nstrict: true\ndata: ctx.yaml\n")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "report", cfg.Name)
	assert.True(t, cfg.Strict)
	assert.Equal(t, "ctx.yaml", cfg.DataFile)
}

func TestFindConfigUpward(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "name: parent\n")
	nested := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	t.Chdir(nested)

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "parent", cfg.Name)
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "name: from-file\ndebug: true\n")

	t.Setenv("MINIJINJA_NAME", "from-env")

	flags := testFlags()
	require.NoError(t, flags.Parse([]string{"--name", "from-flag"}))

	cfg, err := Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, "from-flag", cfg.Name, "flags beat env and file")
	assert.True(t, cfg.Debug, "file values survive when not overridden")

	cfg, err = Load(path, testFlags())
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Name, "env beats file")
}

func TestLoadUnsetFlagsIgnored(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "strict: true\n")

	flags := testFlags()
	require.NoError(t, flags.Parse(nil))

	cfg, err := Load(path, flags)
	require.NoError(t, err)
	assert.True(t, cfg.Strict, "unset flags must not clobber file values")
}
