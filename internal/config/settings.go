package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"

	"github.com/convertlength/convertlength/internal/units"
)

// Settings is the on-disk configuration
type Settings struct {
	General GeneralSettings `yaml:"general"`
}

// GeneralSettings holds the screen defaults
type GeneralSettings struct {
	DefaultFrom string `yaml:"default_from"`
	DefaultTo   string `yaml:"default_to"`
}

// DefaultSettings returns the settings used when no file exists
func DefaultSettings() *Settings {
	all := units.All()
	return &Settings{
		General: GeneralSettings{
			DefaultFrom: all[units.Metre].Name,
			DefaultTo:   all[units.Centimetre].Name,
		},
	}
}

// DefaultUnits resolves the configured default units to table indices.
// Names that do not resolve fall back to the built-in defaults.
func (s *Settings) DefaultUnits() (from, to int) {
	from, to = units.Metre, units.Centimetre
	if s == nil {
		return from, to
	}
	if _, i, err := units.Lookup(s.General.DefaultFrom); err == nil {
		from = i
	}
	if _, i, err := units.Lookup(s.General.DefaultTo); err == nil {
		to = i
	}
	return from, to
}

// LoadSettings reads the settings file. A missing file yields defaults.
func LoadSettings() (*Settings, error) {
	data, err := os.ReadFile(GetSettingsPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultSettings(), nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	settings := DefaultSettings()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	return settings, nil
}

// SaveSettings writes the settings file while holding an exclusive lock on
// a sibling lock file, then renames it into place.
func SaveSettings(s *Settings) error {
	if err := EnsureDirs(); err != nil {
		return fmt.Errorf("failed to ensure config dirs: %w", err)
	}

	path := GetSettingsPath()
	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to lock settings: %w", err)
	}
	defer lock.Unlock()

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "settings-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to create temp settings: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace settings: %w", err)
	}
	return nil
}
