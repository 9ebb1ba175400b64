// Package fontscan discovers font files in explicit directories and in the
// host's standard system font locations.
package fontscan

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// fontExtensions are the file types handed to the face parser. TrueType
// collections (.ttc) are excluded: the parser reads single-font files, and
// skipping them here keeps the catalog's "skip silently" contract cheap.
var fontExtensions = map[string]bool{
	".ttf": true,
	".otf": true,
}

// SystemDirs returns the host's standard font locations for the current
// platform. Directories that do not exist are returned anyway; List skips
// them.
func SystemDirs() []string {
	switch runtime.GOOS {
	case "darwin":
		dirs := []string{
			"/Library/Fonts",
			"/System/Library/Fonts",
		}
		if home, err := os.UserHomeDir(); err == nil {
			dirs = append(dirs, filepath.Join(home, "Library", "Fonts"))
		}
		return dirs
	case "windows":
		root := os.Getenv("SYSTEMROOT")
		if root == "" {
			root = `C:\Windows`
		}
		return []string{filepath.Join(root, "Fonts")}
	default:
		dirs := []string{
			"/usr/share/fonts",
			"/usr/local/share/fonts",
		}
		if home, err := os.UserHomeDir(); err == nil {
			dirs = append(dirs,
				filepath.Join(home, ".fonts"),
				filepath.Join(home, ".local", "share", "fonts"),
			)
		}
		return dirs
	}
}

// List walks the given directories recursively and returns every font file
// found, in deterministic walk order. Unreadable directories and entries
// are skipped.
func List(dirs []string) []string {
	var paths []string
	for _, dir := range dirs {
		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if d != nil && d.IsDir() {
					return filepath.SkipDir
				}
				return nil //nolint:nilerr // unreadable entries are skipped
			}
			if d.IsDir() {
				return nil
			}
			if fontExtensions[strings.ToLower(filepath.Ext(path))] {
				paths = append(paths, path)
			}
			return nil
		})
	}
	return paths
}
