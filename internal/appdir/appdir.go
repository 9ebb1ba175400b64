// Package appdir resolves the host's standard per-user data and cache
// directories, used to locate installed document packages.
package appdir

import (
	"os"
	"path/filepath"
	"runtime"
)

// DataDir returns the per-user data directory, or "" if it cannot be
// determined. Resolution follows the platform convention: XDG_DATA_HOME on
// Linux and the BSDs, Application Support on macOS, APPDATA on Windows.
func DataDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		return filepath.Join(home, "Library", "Application Support")
	case "windows":
		return os.Getenv("APPDATA")
	default:
		if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
			return dir
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		return filepath.Join(home, ".local", "share")
	}
}

// CacheDir returns the per-user cache directory, or "" if it cannot be
// determined.
func CacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return dir
}
