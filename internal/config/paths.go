package config

import (
	"os"
	"path/filepath"
)

const appDirName = "convertlength"

// GetConfigDir returns the directory for settings and logs.
// Honors XDG_CONFIG_HOME, falling back to ~/.config.
func GetConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appDirName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), appDirName)
	}
	return filepath.Join(home, ".config", appDirName)
}

// GetLogsDir returns the directory for debug logs
func GetLogsDir() string {
	return filepath.Join(GetConfigDir(), "logs")
}

// GetSettingsPath returns the path of the settings file
func GetSettingsPath() string {
	return filepath.Join(GetConfigDir(), "settings.yaml")
}

// EnsureDirs creates the config and logs directories
func EnsureDirs() error {
	if err := os.MkdirAll(GetConfigDir(), 0755); err != nil {
		return err
	}
	return os.MkdirAll(GetLogsDir(), 0755)
}
