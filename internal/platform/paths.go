package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// AppDirName is the directory under the user config dir holding launcher data
const AppDirName = "niagara-launcher"

// File permissions
const (
	DefaultDirPermissions = 0755
)

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// DataDir returns the launcher's data directory, creating it if needed.
// NIAGARA_DATA_DIR overrides the location.
func DataDir() (string, error) {
	dir := os.Getenv("NIAGARA_DATA_DIR")
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user config directory: %w", err)
		}
		dir = filepath.Join(base, AppDirName)
	}
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}
	return dir, nil
}

// CatalogPath returns the path of the app catalog database
func CatalogPath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "catalog.db"), nil
}
