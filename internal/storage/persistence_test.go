package storage

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name string `json:"name"`
}

func TestLoadJSONMissingFile(t *testing.T) {
	s := NewServiceWithFs(afero.NewMemMapFs(), "/cfg")

	var v sample
	found, err := s.LoadJSON(s.SettingsFile(), &v)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestPersistAndLoadJSON(t *testing.T) {
	s := NewServiceWithFs(afero.NewMemMapFs(), "/cfg")

	require.NoError(t, s.PersistJSON(s.ThemeConfigFile(), sample{Name: "dark"}))
	assert.True(t, s.Exists(s.ThemeConfigFile()))

	var v sample
	found, err := s.LoadJSON(s.ThemeConfigFile(), &v)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "dark", v.Name)
}

func TestLoadJSONInvalid(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewServiceWithFs(fs, "/cfg")
	require.NoError(t, afero.WriteFile(fs, s.SettingsFile(), []byte("{not json"), 0644))

	var v sample
	found, err := s.LoadJSON(s.SettingsFile(), &v)
	assert.True(t, found)
	assert.Error(t, err)
}

func TestListJSONFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewServiceWithFs(fs, "/cfg")
	require.NoError(t, s.EnsureDirs())

	_ = afero.WriteFile(fs, filepath.Join(s.ThemesDir(), "a.json"), []byte("{}"), 0644)
	_ = afero.WriteFile(fs, filepath.Join(s.ThemesDir(), "notes.txt"), []byte("x"), 0644)
	_ = fs.MkdirAll(filepath.Join(s.ThemesDir(), "nested.json"), 0755)

	files, err := s.ListJSONFiles(s.ThemesDir())
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(s.ThemesDir(), "a.json")}, files)
}
