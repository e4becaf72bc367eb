package fs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsValidFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "main.lm")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal(err)
	}

	if !IsValidFile(file) {
		t.Errorf("%s should be a valid file", file)
	}
	if IsValidFile(dir) {
		t.Errorf("a directory is not a valid file")
	}
	if IsValidFile(filepath.Join(dir, "missing.lm")) {
		t.Errorf("a missing file is not a valid file")
	}
	if !IsDir(dir) || IsDir(file) {
		t.Errorf("IsDir mismatch")
	}
}

func TestReplaceExt(t *testing.T) {
	tests := []struct {
		path, ext, want string
	}{
		{"main.lm", ".ssa", "main.ssa"},
		{"dir/main.lm", ".ll", "dir/main.ll"},
		{"noext", ".ssa", "noext.ssa"},
		{"a.b/main", ".ll", "a.b/main.ll"},
		{"main.lm", "", "main"},
	}

	for _, tt := range tests {
		if got := ReplaceExt(tt.path, tt.ext); got != tt.want {
			t.Errorf("ReplaceExt(%q, %q) = %q, want %q", tt.path, tt.ext, got, tt.want)
		}
	}
}
