package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peternagy/pdfbinder/internal/types"
)

type noAccent struct{}

func (noAccent) WindowGlassColor() (types.Color, error) {
	return types.Color{}, errors.New("unavailable")
}

func run(t *testing.T, fs afero.Fs, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(fs, noAccent{})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config-dir", "/cfg"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestFilterCommand(t *testing.T) {
	out, err := run(t, afero.NewMemMapFs(), "filter", "*.pdf", "*.txt")
	require.NoError(t, err)
	assert.Equal(t, "*.pdf|*.txt\n", out)

	out, err = run(t, afero.NewMemMapFs(), "filter")
	require.NoError(t, err)
	assert.Equal(t, "*.pdf|*.*\n", out)
}

func TestThemesListAndApply(t *testing.T) {
	fs := afero.NewMemMapFs()

	out, err := run(t, fs, "themes", "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "dark")
	assert.False(t, strings.HasPrefix(lines[0], "*"), "nothing applied yet")

	out, err = run(t, fs, "themes", "apply", "Light")
	require.NoError(t, err)
	assert.Equal(t, "Applied theme Light (accent #1BA1E2)\n", out)

	out, err = run(t, fs, "themes", "list")
	require.NoError(t, err)
	lines = strings.Split(strings.TrimSpace(out), "\n")
	assert.True(t, strings.HasPrefix(lines[1], "*"), "light should be marked active")
}

func TestThemesApplyUnknown(t *testing.T) {
	_, err := run(t, afero.NewMemMapFs(), "themes", "apply", "Unknown")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "theme not found: Unknown")
}

func TestThemesApplyEmptyName(t *testing.T) {
	fs := afero.NewMemMapFs()
	out, err := run(t, fs, "themes", "apply", "")
	require.Error(t, err)
	assert.NotContains(t, out, "Applied theme")

	exists, err := afero.Exists(fs, "/cfg/theme_config.json")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestAccentCommand(t *testing.T) {
	fs := afero.NewMemMapFs()

	out, err := run(t, fs, "accent")
	require.NoError(t, err)
	assert.Contains(t, out, "#1BA1E2")

	out, err = run(t, fs, "accent", "--set", "#2D7D9A")
	require.NoError(t, err)
	assert.Contains(t, out, "#2D7D9A")

	out, err = run(t, fs, "accent")
	require.NoError(t, err)
	assert.Contains(t, out, "#2D7D9A", "stored accent should persist")

	out, err = run(t, fs, "accent", "--system")
	require.NoError(t, err)
	assert.Contains(t, out, "#1BA1E2")

	_, err = run(t, fs, "accent", "--set", "blue")
	assert.Error(t, err)
}
