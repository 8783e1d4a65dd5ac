package pathutil

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandHomePath expands ~ to the user's home directory.
// Returns the original path if ~ expansion fails or if path doesn't start with ~/
func ExpandHomePath(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to original path if we can't get home directory
		return path
	}

	return filepath.Join(homeDir, path[2:])
}
