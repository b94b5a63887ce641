// Package cleaner is the deletion primitive acting on advisor output.
// It refuses protected paths and tiers regardless of what it is asked
// to delete.
package cleaner

import (
	"os"

	"github.com/pr0nt0-Zz/StorageCleaner/internal/advisor"
	"github.com/pr0nt0-Zz/StorageCleaner/internal/catalog"
	"github.com/pr0nt0-Zz/StorageCleaner/internal/security"
)

// Cleaner deletes files flagged by a scan
type Cleaner struct {
	registry *security.Registry
	dryRun   bool
}

// Result summarizes a deletion pass
type Result struct {
	DeletedFiles []string
	DeletedSize  int64
	SkippedFiles []string
	Errors       []*DeletionError
	DryRun       bool
}

// New creates a Cleaner. In dry-run mode nothing is removed; the
// result reports what would have been deleted.
func New(registry *security.Registry, dryRun bool) *Cleaner {
	return &Cleaner{
		registry: registry,
		dryRun:   dryRun,
	}
}

// Delete removes the given files. Files marked protected, or whose
// path or extension the registry protects, are skipped. A file that is
// already gone counts as deleted.
func (c *Cleaner) Delete(files []advisor.FileInfo) *Result {
	result := &Result{DryRun: c.dryRun}

	for _, fi := range files {
		if fi.Safety == catalog.TierProtected ||
			c.registry.IsProtectedDir(fi.Path) ||
			c.registry.IsProtectedExtension(fi.Extension) {
			result.SkippedFiles = append(result.SkippedFiles, fi.Path)
			result.Errors = append(result.Errors, &DeletionError{
				Path:   fi.Path,
				Reason: ErrorProtectedPath,
			})
			continue
		}

		if c.dryRun {
			result.DeletedFiles = append(result.DeletedFiles, fi.Path)
			result.DeletedSize += fi.Size
			continue
		}

		if err := os.Remove(fi.Path); err != nil {
			if os.IsNotExist(err) {
				result.DeletedFiles = append(result.DeletedFiles, fi.Path)
				continue
			}
			result.SkippedFiles = append(result.SkippedFiles, fi.Path)
			result.Errors = append(result.Errors, CategorizeError(fi.Path, err))
			continue
		}

		result.DeletedFiles = append(result.DeletedFiles, fi.Path)
		result.DeletedSize += fi.Size
	}

	return result
}
