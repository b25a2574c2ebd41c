package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultDirPermissions is used for directories created for database files
const DefaultDirPermissions = 0755

// DefaultDatabaseName is the file name used under the user config directory
const DefaultDatabaseName = "favorites.db"

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// DefaultDatabasePath returns <user config dir>/college-schedule/favorites.db
func DefaultDatabasePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(dir, "college-schedule", DefaultDatabaseName), nil
}
