package advisor

import (
	"strings"
	"time"

	"github.com/pr0nt0-Zz/StorageCleaner/internal/catalog"
)

// FileInfo is a scored, categorized file record
type FileInfo struct {
	Path            string             `json:"path" yaml:"path"`
	Size            int64              `json:"size" yaml:"size"`
	Accessed        string             `json:"accessed" yaml:"accessed"` // formatted date
	Modified        string             `json:"modified" yaml:"modified"` // formatted date
	Extension       string             `json:"extension" yaml:"extension"`
	Category        string             `json:"category" yaml:"category"`
	Safety          catalog.SafetyTier `json:"safety" yaml:"safety"`
	Score           int                `json:"score" yaml:"score"` // 0-100
	Confidence      string             `json:"confidence" yaml:"confidence"`
	Recommendation  string             `json:"recommendation" yaml:"recommendation"`
	Reasons         []string           `json:"reasons" yaml:"reasons"`
	DuplicateGroup  int                `json:"duplicate_group" yaml:"duplicate_group"` // 0 = not a duplicate
	IsNewestInGroup bool               `json:"is_newest_in_group" yaml:"is_newest_in_group"`
}

// ReasonsText joins the scoring reasons for display
func (f *FileInfo) ReasonsText() string {
	if len(f.Reasons) == 0 {
		return "Large file"
	}
	return strings.Join(f.Reasons, ", ")
}

// CategorySummary aggregates returned files of one category
type CategorySummary struct {
	Count     int   `json:"count" yaml:"count"`
	TotalSize int64 `json:"total_size" yaml:"total_size"`
}

// ScanStats carries diagnostic counts and distribution parameters
type ScanStats struct {
	FilesScanned  int     `json:"files_scanned" yaml:"files_scanned"`
	FilesReturned int     `json:"files_returned" yaml:"files_returned"`
	SizeMean      float64 `json:"size_mean" yaml:"size_mean"`
	SizeStdDev    float64 `json:"size_stddev" yaml:"size_stddev"`
	AgeMeanDays   float64 `json:"age_mean_days" yaml:"age_mean_days"`
}

// ScanResult is the outcome of one scan invocation. It is never
// mutated after being returned.
type ScanResult struct {
	Files                     []FileInfo                 `json:"files" yaml:"files"`
	DuplicatesFound           int                        `json:"duplicates_found" yaml:"duplicates_found"`
	DuplicateSpaceReclaimable int64                      `json:"duplicate_space_reclaimable" yaml:"duplicate_space_reclaimable"`
	TotalReclaimable          int64                      `json:"total_reclaimable" yaml:"total_reclaimable"`
	CategorySummary           map[string]CategorySummary `json:"category_summary" yaml:"category_summary"`
	Stats                     ScanStats                  `json:"scan_stats" yaml:"scan_stats"`
}

// DistributionStats holds size and age distribution parameters for the
// collected set. Standard deviations are floored to 1.0 so z-scores
// stay finite for degenerate samples.
type DistributionStats struct {
	SizeMean   float64
	SizeStdDev float64
	AgeMean    float64 // seconds at scan time
	AgeStdDev  float64
}

// ProgressFunc receives monotonically non-decreasing percentages in
// [0,100]. It is invoked from the scan's own goroutine and must not
// block.
type ProgressFunc func(percent int)

// rawFile is an ephemeral record produced by the collector
type rawFile struct {
	path  string
	size  int64
	atime time.Time
	mtime time.Time
	ext   string // lowercased, with dot
}
