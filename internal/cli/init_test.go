package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/rhymesort/internal/cli"
	"github.com/yaklabco/rhymesort/pkg/config"
)

func executeInit(t *testing.T, args ...string) error {
	t.Helper()

	cmd := cli.NewRootCommand(testInfo())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"init"}, args...))

	return cmd.Execute()
}

func TestInit_CreatesConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".rhymesort.yml")

	require.NoError(t, executeInit(t, "--output", path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	cfg, err := config.FromYAML(content)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultInput, cfg.Input)
	assert.Equal(t, config.DefaultOutput, cfg.Output)
}

func TestInit_RefusesOverwriteWithoutForce(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".rhymesort.yml")
	require.NoError(t, os.WriteFile(path, []byte("input: keep.txt\n"), 0o644))

	err := executeInit(t, "--output", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "input: keep.txt\n", string(content))
}

func TestInit_ForceFull(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "custom.yml")
	require.NoError(t, os.WriteFile(path, []byte("input: old.txt\n"), 0o644))

	require.NoError(t, executeInit(t, "--output", path, "--force", "--full"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	cfg, err := config.FromYAML(content)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultMaxLines, cfg.MaxLines)
	assert.True(t, cfg.Backups.Enabled)
}

func TestInit_RejectsArguments(t *testing.T) {
	t.Parallel()

	err := executeInit(t, "extra")
	require.ErrorIs(t, err, cli.ErrUsage)
}
