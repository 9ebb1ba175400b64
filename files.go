package fontcompare

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/typeglass/fontcompare/internal/appdir"
)

// MainFileName is the virtual path assigned to the synthesized main
// document after ReplaceAll.
const MainFileName = "main.md"

// packagesSubdir is the install location of document packages below the
// host's data and cache directories.
const packagesSubdir = "packages"

// FileCatalog resolves FileIDs to byte content, caching every successful
// resolution. The active root is either a project directory or, after
// ReplaceAll, a fixed virtual root. Package-qualified ids resolve against
// the package's install location regardless of the active root.
//
// All methods are safe for concurrent use; the lookup-or-populate sequence
// is serialized by a single mutex, so a second caller requesting a
// different, uncached id blocks only on lock acquisition.
type FileCatalog struct {
	mu      sync.Mutex
	entries map[FileID][]byte
	rootDir string
	virtual bool
}

// NewFileCatalog creates a catalog resolving plain ids against rootDir.
func NewFileCatalog(rootDir string) *FileCatalog {
	return &FileCatalog{
		entries: make(map[FileID][]byte),
		rootDir: rootDir,
	}
}

// Resolve returns the byte content for id. A cached entry is returned
// as-is; on a miss the id is read from its backing location, classified
// into FileNotFound, FileAccessDenied, or FileOther on failure, and cached
// on success. An id, once cached, is never re-read from storage within the
// same process lifetime.
func (c *FileCatalog) Resolve(id FileID) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if data, ok := c.entries[id]; ok {
		return data, nil
	}

	var root string
	switch {
	case id.hasPkg:
		dir, err := packageRoot(id.pkg)
		if err != nil {
			return nil, err
		}
		root = dir
	case c.virtual:
		// The virtual root is in-memory only: a miss cannot fall back to
		// the filesystem.
		return nil, &FileError{ID: id, Kind: FileNotFound}
	default:
		root = c.rootDir
	}

	diskPath, ok := id.Resolve(root)
	if !ok {
		return nil, &FileError{ID: id, Kind: FileAccessDenied}
	}

	data, err := os.ReadFile(diskPath) // #nosec G304 -- path is confined to the active root
	if err != nil {
		return nil, classifyReadError(id, err)
	}

	c.entries[id] = data
	return data, nil
}

// ReplaceAll switches the active root to the virtual root, binds a fresh
// FileID for the main document containing mainContent, and inserts each
// entry of extraFiles under its own FileID. The returned id is the new
// main document.
//
// Entries cached under the previous root are intentionally not purged;
// they remain addressable by their original FileID. An id colliding across
// roots can therefore observe stale bytes (known ambiguity inherited from
// the original design, neither relied upon nor silently fixed).
func (c *FileCatalog) ReplaceAll(mainContent string, extraFiles map[string][]byte) FileID {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.virtual = true

	mainID := NewFileID(nil, MainFileName)
	c.entries[mainID] = []byte(mainContent)

	for name, content := range extraFiles {
		c.entries[NewFileID(nil, name)] = content
	}
	return mainID
}

// Root returns the project root directory the catalog was created with.
func (c *FileCatalog) Root() string { return c.rootDir }

// packageRoot derives the install directory of a package, searching the
// host's data directory and then its cache directory. Packages are never
// downloaded: if neither location contains the package, the result is
// FileNotFound.
func packageRoot(spec PackageSpec) (string, error) {
	sub := filepath.Join("fontcompare", packagesSubdir, spec.Namespace, spec.Name, spec.Version)
	for _, base := range []string{appdir.DataDir(), appdir.CacheDir()} {
		if base == "" {
			continue
		}
		dir := filepath.Join(base, sub)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir, nil
		}
	}
	return "", &FileError{
		ID:     FileID{pkg: spec, hasPkg: true, vpath: "/"},
		Kind:   FileNotFound,
		Detail: sub,
	}
}

// classifyReadError maps an os.ReadFile failure onto the FileError
// taxonomy.
func classifyReadError(id FileID, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &FileError{ID: id, Kind: FileNotFound}
	case errors.Is(err, fs.ErrPermission):
		return &FileError{ID: id, Kind: FileAccessDenied}
	default:
		return &FileError{ID: id, Kind: FileOther, Detail: err.Error()}
	}
}
