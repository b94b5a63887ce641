package security

import (
	"path/filepath"
	"testing"
)

func abs(parts ...string) string {
	return filepath.Join(string(filepath.Separator), filepath.Join(parts...))
}

func TestIsProtectedDir(t *testing.T) {
	r := NewRegistry([]string{abs("usr", "bin"), abs("etc")}, nil)

	tests := []struct {
		path string
		want bool
	}{
		{abs("usr", "bin"), true},
		{abs("usr", "bin", "ls"), true},
		{abs("usr", "bin", "sub", "deep"), true},
		{abs("etc", "passwd"), true},
		{abs("usr"), false},
		{abs("usr", "binext", "file"), false}, // sibling prefix must not match
		{abs("home", "user", "file"), false},
	}
	for _, tt := range tests {
		if got := r.IsProtectedDir(tt.path); got != tt.want {
			t.Errorf("IsProtectedDir(%s) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestIsProtectedDirCaseInsensitive(t *testing.T) {
	r := NewRegistry([]string{abs("Protected", "Dir")}, nil)

	if !r.IsProtectedDir(abs("protected", "dir", "file.txt")) {
		t.Error("lowercased query should match")
	}
	if !r.IsProtectedDir(abs("PROTECTED", "DIR")) {
		t.Error("uppercased query should match")
	}
}

func TestIsProtectedDirCached(t *testing.T) {
	r := NewRegistry([]string{abs("locked")}, nil)

	path := abs("locked", "file")
	first := r.IsProtectedDir(path)
	second := r.IsProtectedDir(path)
	if first != second || !first {
		t.Errorf("cached lookup diverged: %v then %v", first, second)
	}
}

func TestAddProtectedDir(t *testing.T) {
	r := NewRegistry(nil, nil)

	path := abs("custom", "data")
	if r.IsProtectedDir(path) {
		t.Fatal("path protected before being added")
	}

	r.AddProtectedDir(abs("custom"))
	if !r.IsProtectedDir(path) {
		t.Error("path not protected after AddProtectedDir")
	}
}

func TestIsProtectedExtension(t *testing.T) {
	r := NewRegistry(nil, []string{".so", ".DLL"})

	tests := []struct {
		ext  string
		want bool
	}{
		{".so", true},
		{".SO", true},
		{".dll", true},
		{".txt", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := r.IsProtectedExtension(tt.ext); got != tt.want {
			t.Errorf("IsProtectedExtension(%q) = %v, want %v", tt.ext, got, tt.want)
		}
	}
}
