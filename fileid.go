package fontcompare

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

// PackageSpec identifies an installed document package. Packages are never
// fetched; a spec that is not installed resolves to "not found".
type PackageSpec struct {
	Namespace string
	Name      string
	Version   string
}

// String renders the specifier in the @namespace/name:version form used
// in error messages.
func (s PackageSpec) String() string {
	return fmt.Sprintf("@%s/%s:%s", s.Namespace, s.Name, s.Version)
}

// FileID identifies a logical file within one World snapshot: an optional
// package specifier plus a rooted virtual path. FileIDs are immutable,
// comparable, and used as cache keys.
type FileID struct {
	pkg    PackageSpec
	hasPkg bool
	vpath  string
}

// NewFileID builds a FileID from an optional package spec and a virtual
// path. The path is normalized to a rooted, slash-separated form; ".."
// segments cannot escape the root.
func NewFileID(pkg *PackageSpec, vpath string) FileID {
	id := FileID{vpath: normalizeVPath(vpath)}
	if pkg != nil {
		id.pkg = *pkg
		id.hasPkg = true
	}
	return id
}

// Package returns the package specifier, if any.
func (id FileID) Package() (PackageSpec, bool) {
	return id.pkg, id.hasPkg
}

// Path returns the rooted virtual path, e.g. "/main.md".
func (id FileID) Path() string { return id.vpath }

// String renders the id for error messages.
func (id FileID) String() string {
	if id.hasPkg {
		return id.pkg.String() + id.vpath
	}
	return id.vpath
}

// Resolve maps the virtual path into the given root directory. The second
// return value is false when the path cannot be represented under the root.
func (id FileID) Resolve(root string) (string, bool) {
	rel := strings.TrimPrefix(id.vpath, "/")
	if rel == "" {
		return "", false
	}
	return filepath.Join(root, filepath.FromSlash(rel)), true
}

// normalizeVPath converts vpath into a rooted, cleaned, slash-separated
// path. Because the result is always rooted before cleaning, ".." segments
// collapse against the root instead of escaping it.
func normalizeVPath(vpath string) string {
	p := strings.ReplaceAll(vpath, "\\", "/")
	return path.Clean("/" + p)
}
