package advisor

import (
	"strings"
	"testing"
	"time"

	"github.com/pr0nt0-Zz/StorageCleaner/internal/catalog"
	"github.com/pr0nt0-Zz/StorageCleaner/internal/platform"
)

// neutralStats make every z-score come out to zero for a file of the
// given size modified at now.
func neutralStats(size int64) DistributionStats {
	return DistributionStats{
		SizeMean:   float64(size),
		SizeStdDev: 1,
		AgeMean:    0,
		AgeStdDev:  1,
	}
}

func noDups() dupInfo {
	return dupInfo{
		groupByPath: map[string]int{},
		newestPath:  map[int]string{},
	}
}

func TestScoreRuleComponents(t *testing.T) {
	now := time.Now()
	adv := testAdvisor(nil, nil, nil)

	tests := []struct {
		name     string
		path     string
		ext      string
		score    int
		category string
	}{
		{"junk extension", "/data/media/file.tmp", ".tmp", 15, "cache_temp"},
		{"safe category extension", "/data/media/mod.pyc", ".pyc", 10, "build_artifact"},
		{"archive fallback", "/data/media/disc.iso", ".iso", 5, "archive"},
		{"junk wins over safe category", "/data/media/app.log", ".log", 15, "log_file"},
		{"downloads folder", "/data/downloads/file.bin", ".bin", 10, "old_download"},
		{"temp folder", "/data/tmp/file.bin", ".bin", 15, "cache_temp"},
		{"no signals", "/data/media/file.bin", ".bin", 0, "large_unused"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := rawFile{path: tt.path, size: 100, atime: now, mtime: now, ext: tt.ext}
			fi, ok := adv.scoreFile(f, neutralStats(100), noDups(), now)
			if !ok {
				t.Fatal("file unexpectedly excluded")
			}
			if fi.Score != tt.score {
				t.Errorf("score = %d, want %d", fi.Score, tt.score)
			}
			if fi.Category != tt.category {
				t.Errorf("category = %s, want %s", fi.Category, tt.category)
			}
		})
	}
}

func TestScoreRuleAdditivity(t *testing.T) {
	now := time.Now()
	adv := testAdvisor(nil, nil, []platform.JunkDir{
		{Path: "/data", Category: "package_cache"},
	})

	f := rawFile{
		path:  "/data/downloads/temp/file.tmp",
		size:  100,
		atime: now,
		mtime: now,
		ext:   ".tmp",
	}
	fi, ok := adv.scoreFile(f, neutralStats(100), noDups(), now)
	if !ok {
		t.Fatal("file unexpectedly excluded")
	}

	// 15 junk ext + 10 downloads + 15 temp + 10 known junk dir
	if fi.Score != 50 {
		t.Errorf("score = %d, want 50", fi.Score)
	}
	if fi.Safety != catalog.TierReview {
		t.Errorf("safety = %s, want review", fi.Safety)
	}
	// Known junk dir category wins over the extension mapping
	if fi.Category != "package_cache" {
		t.Errorf("category = %s, want package_cache", fi.Category)
	}
}

func TestScoreStatisticalOutliers(t *testing.T) {
	now := time.Now()
	adv := testAdvisor(nil, nil, nil)

	stats := DistributionStats{
		SizeMean:   0,
		SizeStdDev: 1,
		AgeMean:    0,
		AgeStdDev:  86400,
	}
	f := rawFile{
		path:  "/data/media/file.bin",
		size:  4, // z = 4, capped at 15 points
		atime: now,
		mtime: now.Add(-10 * 24 * time.Hour), // z = 10, capped at 15 points
		ext:   ".bin",
	}

	fi, ok := adv.scoreFile(f, stats, noDups(), now)
	if !ok {
		t.Fatal("file unexpectedly excluded")
	}
	if fi.Score != 30 {
		t.Errorf("score = %d, want 30", fi.Score)
	}
	if fi.Safety != catalog.TierReview {
		t.Errorf("safety = %s, want review", fi.Safety)
	}

	joined := strings.Join(fi.Reasons, "; ")
	if !strings.Contains(joined, "Unusually large") {
		t.Errorf("missing size outlier reason in %q", joined)
	}
	if !strings.Contains(joined, "Unusually old") {
		t.Errorf("missing age outlier reason in %q", joined)
	}
}

func TestZPoints(t *testing.T) {
	tests := []struct {
		z    float64
		want int
	}{
		{1.2, 6},
		{2.0, 10},
		{2.8, 14},
		{3.0, 15},
		{4.0, 15}, // capped
		{10.0, 15},
	}
	for _, tt := range tests {
		if got := zPoints(tt.z); got != tt.want {
			t.Errorf("zPoints(%.1f) = %d, want %d", tt.z, got, tt.want)
		}
	}
}

func TestScoreDuplicateBonus(t *testing.T) {
	now := time.Now()
	adv := testAdvisor(nil, nil, nil)

	path := "/x/downloads/tmp/a.tmp"
	dups := dupInfo{
		groupByPath: map[string]int{path: 1},
		newestPath:  map[int]string{1: "/x/downloads/tmp/b.tmp"},
	}

	f := rawFile{path: path, size: 100, atime: now, mtime: now, ext: ".tmp"}
	fi, ok := adv.scoreFile(f, neutralStats(100), dups, now)
	if !ok {
		t.Fatal("file unexpectedly excluded")
	}

	// 15 junk ext + 10 downloads + 15 temp + 20 duplicate
	if fi.Score != 60 {
		t.Errorf("score = %d, want 60", fi.Score)
	}
	if fi.Safety != catalog.TierSafe {
		t.Errorf("safety = %s, want safe", fi.Safety)
	}
	if fi.Category != "duplicate" {
		t.Errorf("category = %s, want duplicate", fi.Category)
	}
	if fi.Recommendation != "SAFE TO DELETE - Duplicate copy" {
		t.Errorf("recommendation = %q", fi.Recommendation)
	}
	if fi.Confidence != "Medium" {
		t.Errorf("confidence = %s, want Medium", fi.Confidence)
	}
	if fi.IsNewestInGroup {
		t.Error("non-newest copy flagged as newest")
	}
}

func TestScoreNewestCopyKept(t *testing.T) {
	now := time.Now()
	adv := testAdvisor(nil, nil, nil)

	path := "/data/media/a.bin"
	dups := dupInfo{
		groupByPath: map[string]int{path: 3},
		newestPath:  map[int]string{3: path},
	}

	f := rawFile{path: path, size: 100, atime: now, mtime: now, ext: ".bin"}
	fi, ok := adv.scoreFile(f, neutralStats(100), dups, now)
	if !ok {
		t.Fatal("file unexpectedly excluded")
	}

	if fi.Score != 0 {
		t.Errorf("score = %d, want 0 (no bonus for the kept copy)", fi.Score)
	}
	if !fi.IsNewestInGroup {
		t.Error("newest copy not flagged")
	}
	if fi.DuplicateGroup != 3 {
		t.Errorf("group = %d, want 3", fi.DuplicateGroup)
	}
	if fi.Category == "duplicate" {
		t.Error("kept copy should not be categorized as duplicate")
	}

	joined := strings.Join(fi.Reasons, "; ")
	if !strings.Contains(joined, "newest copy - kept") {
		t.Errorf("missing kept-copy reason in %q", joined)
	}
}

func TestScoreProtectedExcluded(t *testing.T) {
	now := time.Now()

	t.Run("extension", func(t *testing.T) {
		adv := testAdvisor(nil, []string{".so"}, nil)
		f := rawFile{path: "/data/lib.so", size: 100, atime: now, mtime: now, ext: ".so"}
		if _, ok := adv.scoreFile(f, neutralStats(100), noDups(), now); ok {
			t.Error("protected extension not excluded")
		}
	})

	t.Run("directory", func(t *testing.T) {
		adv := testAdvisor([]string{"/protected"}, nil, nil)
		f := rawFile{path: "/protected/file.tmp", size: 100, atime: now, mtime: now, ext: ".tmp"}
		if _, ok := adv.scoreFile(f, neutralStats(100), noDups(), now); ok {
			t.Error("protected directory not excluded")
		}
	})
}

func TestScoreClampAndConfidence(t *testing.T) {
	now := time.Now()
	adv := testAdvisor(nil, nil, []platform.JunkDir{
		{Path: "/data", Category: "package_cache"},
	})

	path := "/data/downloads/tmp/file.tmp"
	dups := dupInfo{
		groupByPath: map[string]int{path: 1},
		newestPath:  map[int]string{1: "/data/downloads/tmp/other.tmp"},
	}
	stats := DistributionStats{
		SizeMean:   0,
		SizeStdDev: 1,
		AgeMean:    0,
		AgeStdDev:  86400,
	}
	f := rawFile{
		path:  path,
		size:  100, // far above the mean
		atime: now,
		mtime: now.Add(-10 * 24 * time.Hour),
		ext:   ".tmp",
	}

	fi, ok := adv.scoreFile(f, stats, dups, now)
	if !ok {
		t.Fatal("file unexpectedly excluded")
	}

	// 50 rule + 30 statistical + 20 duplicate, capped at 100
	if fi.Score != 100 {
		t.Errorf("score = %d, want 100", fi.Score)
	}
	if fi.Safety != catalog.TierSafe {
		t.Errorf("safety = %s, want safe", fi.Safety)
	}
	if fi.Confidence != "High" {
		t.Errorf("confidence = %s, want High", fi.Confidence)
	}
}

func TestScoreFlatAgeReasons(t *testing.T) {
	now := time.Now()
	adv := testAdvisor(nil, nil, nil)

	old := now.Add(-2 * 365 * 24 * time.Hour)
	// Age mean matches the file's own age, so there is no outlier bonus
	// and the flat observations apply instead.
	stats := DistributionStats{
		SizeMean:   100,
		SizeStdDev: 1,
		AgeMean:    now.Sub(old).Seconds(),
		AgeStdDev:  1e12,
	}
	f := rawFile{path: "/data/media/file.bin", size: 100, atime: old, mtime: old, ext: ".bin"}

	fi, ok := adv.scoreFile(f, stats, noDups(), now)
	if !ok {
		t.Fatal("file unexpectedly excluded")
	}
	if fi.Score != 0 {
		t.Errorf("score = %d, want 0", fi.Score)
	}

	joined := strings.Join(fi.Reasons, "; ")
	if !strings.Contains(joined, "Not accessed in >1 year") {
		t.Errorf("missing access reason in %q", joined)
	}
	if !strings.Contains(joined, "Not modified in >1 year") {
		t.Errorf("missing modification reason in %q", joined)
	}
}

func TestReasonsTextFallback(t *testing.T) {
	fi := FileInfo{Reasons: nil}
	if got := fi.ReasonsText(); got != "Large file" {
		t.Errorf("ReasonsText() = %q, want %q", got, "Large file")
	}

	fi.Reasons = []string{"a", "b"}
	if got := fi.ReasonsText(); got != "a, b" {
		t.Errorf("ReasonsText() = %q, want %q", got, "a, b")
	}
}
