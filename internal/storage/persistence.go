// Package storage handles configuration file I/O operations.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

const appDirName = "pdfbinder"

// Service handles configuration file persistence.
type Service struct {
	fs        afero.Fs
	configDir string
}

// NewService creates a new storage service on the OS filesystem.
func NewService(configDir string) *Service {
	return NewServiceWithFs(afero.NewOsFs(), configDir)
}

// NewServiceWithFs creates a storage service on the given filesystem.
func NewServiceWithFs(fs afero.Fs, configDir string) *Service {
	return &Service{fs: fs, configDir: configDir}
}

// InitConfigDir sets up the config directory.
func InitConfigDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = os.Getenv("HOME")
	}
	dir := filepath.Join(configDir, appDirName)
	os.MkdirAll(dir, 0755)
	return dir
}

// Fs returns the filesystem the service writes to.
func (s *Service) Fs() afero.Fs {
	return s.fs
}

// ConfigDir returns the config directory path.
func (s *Service) ConfigDir() string {
	return s.configDir
}

// SettingsFile returns the path to the options file.
func (s *Service) SettingsFile() string {
	return filepath.Join(s.configDir, "settings.json")
}

// ThemeConfigFile returns the path to the active theme file.
func (s *Service) ThemeConfigFile() string {
	return filepath.Join(s.configDir, "theme_config.json")
}

// ThemesDir returns the path to the user themes directory.
func (s *Service) ThemesDir() string {
	return filepath.Join(s.configDir, "themes")
}

// EnsureDirs creates the config and themes directories.
func (s *Service) EnsureDirs() error {
	if err := s.fs.MkdirAll(s.ThemesDir(), 0755); err != nil {
		return fmt.Errorf("failed to create themes dir: %w", err)
	}
	return nil
}

// Exists reports whether path exists.
func (s *Service) Exists(path string) bool {
	ok, err := afero.Exists(s.fs, path)
	return err == nil && ok
}

// LoadJSON decodes path into v. A missing file reports found=false and no error.
func (s *Service) LoadJSON(path string, v interface{}) (found bool, err error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return true, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return true, nil
}

// PersistJSON writes v to path as indented JSON.
func (s *Service) PersistJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filepath.Base(path), err)
	}
	if err := s.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return afero.WriteFile(s.fs, path, data, 0644)
}

// ListJSONFiles returns the .json files directly inside dir.
func (s *Service) ListJSONFiles(dir string) ([]string, error) {
	entries, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	return files, nil
}
