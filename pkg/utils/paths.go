// Package utils holds small helpers shared by the command line and config layers.
package utils

import (
	"os"
	"path/filepath"
)

// ExpandPath expands a leading ~ and environment variables in a user supplied path.
// The path is returned as given when the home directory is unknown.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if path == "~" || (len(path) > 1 && path[0] == '~' && path[1] == '/') {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}

	return os.ExpandEnv(path)
}
