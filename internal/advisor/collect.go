package advisor

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidRoot is returned when the scan root does not exist or is
// not a directory.
var ErrInvalidRoot = errors.New("invalid scan root")

// cancelCheckInterval is how many walk entries pass between context
// cancellation checks.
const cancelCheckInterval = 256

// collect walks root to maxDepth and produces the records eligible for
// scoring. Protected subtrees are pruned entirely; per-file stat
// failures and unreadable directories are skipped without aborting the
// walk. Only an invalid root or a cancelled context yields an error.
func (a *Advisor) collect(ctx context.Context, root string, minSize int64, maxDepth int) ([]rawFile, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidRoot, root, err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidRoot, root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s: not a directory", ErrInvalidRoot, root)
	}

	var files []rawFile
	entriesSinceCheck := 0

	walkErr := filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Permission denied or a directory that vanished mid-walk:
			// continue with siblings.
			return nil
		}

		entriesSinceCheck++
		if entriesSinceCheck >= cancelCheckInterval {
			entriesSinceCheck = 0
			if cerr := ctx.Err(); cerr != nil {
				return cerr
			}
		}

		if d.IsDir() {
			if walkDepth(absRoot, path) > maxDepth {
				return fs.SkipDir
			}
			if a.registry.IsProtectedDir(path) {
				return fs.SkipDir
			}
			return nil
		}

		fi, err := d.Info()
		if err != nil {
			// File disappeared between readdir and stat
			return nil
		}
		if !fi.Mode().IsRegular() {
			return nil
		}
		if fi.Size() < minSize {
			return nil
		}

		files = append(files, rawFile{
			path:  path,
			size:  fi.Size(),
			atime: accessTime(fi),
			mtime: fi.ModTime(),
			ext:   strings.ToLower(filepath.Ext(path)),
		})
		return nil
	})

	if walkErr != nil {
		return nil, walkErr
	}
	return files, nil
}

// walkDepth returns the directory depth of path relative to root,
// where the root itself is depth 0.
func walkDepth(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}
