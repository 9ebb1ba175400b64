package fileutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/typeglass/fontcompare/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestFileExists / TestDirExists
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "present.txt")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !fileutil.FileExists(path) {
		t.Error("FileExists() = false for an existing file")
	}
	if fileutil.FileExists(filepath.Join(dir, "absent.txt")) {
		t.Error("FileExists() = true for a missing file")
	}
	if fileutil.FileExists(dir) {
		t.Error("FileExists() = true for a directory")
	}
}

func TestDirExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !fileutil.DirExists(dir) {
		t.Error("DirExists() = false for an existing directory")
	}
	if fileutil.DirExists(path) {
		t.Error("DirExists() = true for a file")
	}
	if fileutil.DirExists(filepath.Join(dir, "absent")) {
		t.Error("DirExists() = true for a missing path")
	}
}

// ---------------------------------------------------------------------------
// TestIsFilePath
// ---------------------------------------------------------------------------

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"config", false},
		{"dir/config.yaml", true},
		{`dir\config.yaml`, true},
		{"./config", true},
		{"", false},
	}
	for _, tt := range tests {
		if got := fileutil.IsFilePath(tt.in); got != tt.want {
			t.Errorf("IsFilePath(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestReplaceExt
// ---------------------------------------------------------------------------

func TestReplaceExt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		ext  string
		want string
	}{
		{
			name: "markdown to pdf",
			path: "specimen.md",
			ext:  ".variants.pdf",
			want: "specimen.variants.pdf",
		},
		{
			name: "no extension appends",
			path: "specimen",
			ext:  ".pdf",
			want: "specimen.pdf",
		},
		{
			name: "keeps directories",
			path: filepath.Join("docs", "specimen.md"),
			ext:  ".pdf",
			want: filepath.Join("docs", "specimen.pdf"),
		},
		{
			name: "only the final extension changes",
			path: "a.b.md",
			ext:  ".pdf",
			want: "a.b.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.ReplaceExt(tt.path, tt.ext); got != tt.want {
				t.Errorf("ReplaceExt(%q, %q) = %q, want %q", tt.path, tt.ext, got, tt.want)
			}
		})
	}
}
