// Package testutil provides test fixtures for advisor tests. All file
// operations use t.TempDir() for safe, isolated testing.
package testutil

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// Fixture holds a scan root with helpers to populate it
type Fixture struct {
	T    *testing.T
	Root string
}

// NewFixture creates a fixture rooted in a fresh temp directory
func NewFixture(t *testing.T) *Fixture {
	t.Helper()
	return &Fixture{T: t, Root: t.TempDir()}
}

// CreateFile creates a file with the given content and returns its path
func (f *Fixture) CreateFile(relPath string, content []byte) string {
	f.T.Helper()

	fullPath := filepath.Join(f.Root, relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		f.T.Fatalf("failed to create directory for %s: %v", fullPath, err)
	}
	if err := os.WriteFile(fullPath, content, 0644); err != nil {
		f.T.Fatalf("failed to create file %s: %v", fullPath, err)
	}
	return fullPath
}

// CreateFileWithSize creates a file of the given size filled with a
// repeating byte pattern.
func (f *Fixture) CreateFileWithSize(relPath string, size int) string {
	f.T.Helper()

	content := make([]byte, size)
	for i := range content {
		content[i] = byte(i % 251)
	}
	return f.CreateFile(relPath, content)
}

// CreateRandomFile creates a file of the given size filled from a
// seeded source, so two calls with the same seed are byte-identical.
func (f *Fixture) CreateRandomFile(relPath string, size int, seed int64) string {
	f.T.Helper()

	content := make([]byte, size)
	rand.New(rand.NewSource(seed)).Read(content)
	return f.CreateFile(relPath, content)
}

// SetAge sets a file's access and modification times into the past
func (f *Fixture) SetAge(path string, age time.Duration) {
	f.T.Helper()

	old := time.Now().Add(-age)
	if err := os.Chtimes(path, old, old); err != nil {
		f.T.Fatalf("failed to set file times for %s: %v", path, err)
	}
}

// SetModTime sets a file's modification time (access time follows)
func (f *Fixture) SetModTime(path string, mtime time.Time) {
	f.T.Helper()

	if err := os.Chtimes(path, mtime, mtime); err != nil {
		f.T.Fatalf("failed to set mod time for %s: %v", path, err)
	}
}
