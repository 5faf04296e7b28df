package app

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	appDirName       = "fitlife"
	settingsFileName = "settings.yaml"
)

func DefaultDataDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDirName), nil
}

func EnsureDataDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	return nil
}

func SettingsPath(dataDir string) string {
	return filepath.Join(dataDir, settingsFileName)
}
