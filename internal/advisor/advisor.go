// Package advisor implements the file scoring and duplicate-detection
// pipeline: it walks a directory tree, computes statistical outlier
// scores, detects exact duplicates via partial content hashing, and
// assigns each file a safety tier and a 0-100 deletion score.
//
// The advisor never deletes anything itself; callers act on the paths
// it returns.
package advisor

import (
	"context"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pr0nt0-Zz/StorageCleaner/internal/platform"
	"github.com/pr0nt0-Zz/StorageCleaner/internal/security"
)

// Defaults for scan options left at their zero value
const (
	DefaultMinSizeMB = 50
	DefaultMaxDepth  = 6
)

// Options controls a single scan invocation
type Options struct {
	MinSizeMB int          // minimum file size in MB; 0 means DefaultMinSizeMB
	MaxDepth  int          // maximum traversal depth; 0 means DefaultMaxDepth
	Progress  ProgressFunc // optional, may be nil
}

type junkDir struct {
	path     string // lowercased, cleaned
	category string
}

// Advisor runs scans against a fixed protection registry and known
// junk directory list. Each Scan call is independent; an Advisor may
// run concurrent scans against different roots.
type Advisor struct {
	registry *security.Registry
	junkDirs []junkDir
}

// New creates an advisor with an explicit registry and junk directory
// list.
func New(registry *security.Registry, junkDirs []platform.JunkDir) *Advisor {
	a := &Advisor{registry: registry}
	for _, jd := range junkDirs {
		a.junkDirs = append(a.junkDirs, junkDir{
			path:     strings.ToLower(filepath.Clean(jd.Path)),
			category: jd.Category,
		})
	}
	return a
}

// NewDefault creates an advisor with the current platform's protection
// lists and junk directories.
func NewDefault() (*Advisor, error) {
	info, err := platform.GetInfo()
	if err != nil {
		return nil, err
	}
	registry := security.NewRegistry(info.ProtectedDirs, info.ProtectedExtensions)
	return New(registry, info.JunkDirs), nil
}

// Registry returns the advisor's protection registry
func (a *Advisor) Registry() *security.Registry {
	return a.registry
}

// Scan runs the full pipeline against root and returns the scored
// result, sorted by score descending. An invalid root fails before any
// phase runs; per-file errors during the walk and hashing are absorbed.
// Cancellation is checked between phases and periodically during the
// walk.
func (a *Advisor) Scan(ctx context.Context, root string, opts Options) (*ScanResult, error) {
	if opts.MinSizeMB <= 0 {
		opts.MinSizeMB = DefaultMinSizeMB
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	minSize := int64(opts.MinSizeMB) * 1024 * 1024

	tracker := newProgressTracker(opts.Progress)
	tracker.emit(5)

	records, err := a.collect(ctx, root, minSize, opts.MaxDepth)
	if err != nil {
		return nil, err
	}
	tracker.emit(20)

	if len(records) == 0 {
		tracker.emit(100)
		return &ScanResult{
			Files:           []FileInfo{},
			CategorySummary: map[string]CategorySummary{},
		}, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	now := time.Now()
	stats := computeStats(records, now)
	tracker.emit(30)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dups := findDuplicates(records)
	tracker.emit(50)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	files := make([]FileInfo, 0, len(records))
	var totalReclaimable int64

	progressStep := len(records) / 10
	if progressStep < 1 {
		progressStep = 1
	}

	for i, r := range records {
		fi, ok := a.scoreFile(r, stats, dups, now)
		if ok {
			files = append(files, fi)
			totalReclaimable += fi.Size
		}

		if (i+1)%progressStep == 0 {
			pct := 50 + 40*(i+1)/len(records)
			if pct > 90 {
				pct = 90
			}
			tracker.emit(pct)
		}
	}

	sort.Slice(files, func(i, j int) bool {
		if files[i].Score != files[j].Score {
			return files[i].Score > files[j].Score
		}
		return files[i].Path < files[j].Path
	})

	summary := make(map[string]CategorySummary)
	for _, fi := range files {
		cs := summary[fi.Category]
		cs.Count++
		cs.TotalSize += fi.Size
		summary[fi.Category] = cs
	}

	result := &ScanResult{
		Files:                     files,
		DuplicatesFound:           dups.groupCount,
		DuplicateSpaceReclaimable: dups.reclaimable,
		TotalReclaimable:          totalReclaimable,
		CategorySummary:           summary,
		Stats: ScanStats{
			FilesScanned:  len(records),
			FilesReturned: len(files),
			SizeMean:      stats.SizeMean,
			SizeStdDev:    stats.SizeStdDev,
			AgeMeanDays:   stats.AgeMean / 86400,
		},
	}

	tracker.emit(100)
	return result, nil
}

// progressTracker guarantees the callback sees a strictly increasing
// percentage sequence ending at 100 exactly once.
type progressTracker struct {
	fn   ProgressFunc
	last int
}

func newProgressTracker(fn ProgressFunc) *progressTracker {
	return &progressTracker{fn: fn, last: -1}
}

func (t *progressTracker) emit(percent int) {
	if t.fn == nil || percent <= t.last {
		return
	}
	t.last = percent
	t.fn(percent)
}
