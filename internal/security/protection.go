// Package security implements the protection registry: static,
// platform-dependent sets of directories and extensions that must
// never be suggested for deletion.
package security

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/pr0nt0-Zz/StorageCleaner/internal/platform"
)

// Registry answers protection queries for directories and extensions.
// Lookups are pure: the same input always yields the same answer
// within a process run.
type Registry struct {
	dirs []string            // lowercased, cleaned
	exts map[string]struct{} // lowercased, with dot

	mu       sync.RWMutex
	dirCache map[string]bool // lowercased dir path -> protected
}

// NewRegistry creates a registry from explicit directory and extension
// lists. Paths are cleaned and matching is case-insensitive.
func NewRegistry(dirs, exts []string) *Registry {
	r := &Registry{
		exts:     make(map[string]struct{}, len(exts)),
		dirCache: make(map[string]bool),
	}
	for _, d := range dirs {
		r.dirs = append(r.dirs, strings.ToLower(filepath.Clean(d)))
	}
	for _, e := range exts {
		r.exts[strings.ToLower(e)] = struct{}{}
	}
	return r
}

// DefaultRegistry creates a registry from the current platform's lists
func DefaultRegistry() (*Registry, error) {
	info, err := platform.GetInfo()
	if err != nil {
		return nil, err
	}
	return NewRegistry(info.ProtectedDirs, info.ProtectedExtensions), nil
}

// AddProtectedDir adds a custom protected directory
func (r *Registry) AddProtectedDir(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dirs = append(r.dirs, strings.ToLower(filepath.Clean(path)))
	r.dirCache = make(map[string]bool)
}

// IsProtectedDir reports whether path equals or lies under any
// protected directory.
func (r *Registry) IsProtectedDir(path string) bool {
	lower := strings.ToLower(filepath.Clean(path))

	r.mu.RLock()
	cached, ok := r.dirCache[lower]
	r.mu.RUnlock()
	if ok {
		return cached
	}

	protected := false
	for _, d := range r.dirs {
		if lower == d || strings.HasPrefix(lower, d+string(filepath.Separator)) {
			protected = true
			break
		}
	}

	r.mu.Lock()
	r.dirCache[lower] = protected
	r.mu.Unlock()

	return protected
}

// IsProtectedExtension reports whether ext indicates a system-critical
// file. The extension must include the leading dot; matching is
// case-insensitive.
func (r *Registry) IsProtectedExtension(ext string) bool {
	_, ok := r.exts[strings.ToLower(ext)]
	return ok
}
