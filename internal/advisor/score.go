package advisor

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/pr0nt0-Zz/StorageCleaner/internal/catalog"
)

const (
	secondsInYear = 365.25 * 24 * 3600

	statPointsPerZ = 5
	statPointsCap  = 15
	duplicateBonus = 20
)

const dateFormat = "2006-01-02"

// scoreFile combines rule-based, statistical, and duplicate signals
// into a scored record. The returned bool is false for protected
// files, which never appear in scan output.
func (a *Advisor) scoreFile(f rawFile, stats DistributionStats, dups dupInfo, now time.Time) (FileInfo, bool) {
	if a.registry.IsProtectedExtension(f.ext) || a.registry.IsProtectedDir(f.path) {
		return FileInfo{}, false
	}

	pathLower := strings.ToLower(f.path)
	segments := strings.Split(strings.ToLower(filepath.ToSlash(f.path)), "/")

	score := 0
	var reasons []string

	// Rule-based component (max 50)

	if catalog.IsJunkExtension(f.ext) {
		score += 15
		reasons = append(reasons, fmt.Sprintf("Junk extension (%s)", f.ext))
	} else if cat, ok := catalog.ForExtension(f.ext); ok && cat.DefaultSafety == catalog.TierSafe {
		score += 10
		reasons = append(reasons, fmt.Sprintf("%s extension", cat.Label))
	} else if catalog.IsArchiveExtension(f.ext) {
		score += 5
		reasons = append(reasons, "Archive file")
	}

	inDownloads := anySegment(segments, catalog.IsJunkFolderName)
	if inDownloads {
		score += 10
		reasons = append(reasons, "In Downloads folder")
	}

	inTemp := anySegment(segments, catalog.IsTempFolderName)
	if inTemp {
		score += 15
		reasons = append(reasons, "In Temp/Cache folder")
	}

	junkCategory, inJunkDir := a.junkDirFor(pathLower)
	if inJunkDir {
		score += 10
		reasons = append(reasons, "In known junk directory")
	}

	// Statistical component (max 30)

	modAge := now.Sub(f.mtime).Seconds()
	flaggedOld := false

	sizeZ := (float64(f.size) - stats.SizeMean) / stats.SizeStdDev
	if sizeZ > 1 {
		score += zPoints(sizeZ)
		reasons = append(reasons, fmt.Sprintf("Unusually large (z=%.1f)", sizeZ))
	}

	ageZ := (modAge - stats.AgeMean) / stats.AgeStdDev
	if ageZ > 1 {
		score += zPoints(ageZ)
		reasons = append(reasons, fmt.Sprintf("Unusually old (z=%.1f)", ageZ))
		flaggedOld = true
	}

	// Flat age observations, rationale only
	if !flaggedOld && now.Sub(f.atime).Seconds() > secondsInYear {
		reasons = append(reasons, "Not accessed in >1 year")
	}
	if !flaggedOld && modAge > secondsInYear {
		reasons = append(reasons, "Not modified in >1 year")
	}

	// Duplicate component (max 20)

	gid := dups.groupFor(f.path)
	isNewest := dups.isNewest(f.path)

	if gid > 0 && !isNewest {
		score += duplicateBonus
		reasons = append(reasons, "Duplicate copy (not newest)")
	} else if gid > 0 {
		reasons = append(reasons, "Duplicate (newest copy - kept)")
	}

	if score > 100 {
		score = 100
	}

	var safety catalog.SafetyTier
	switch {
	case score >= 60:
		safety = catalog.TierSafe
	case score >= 30:
		safety = catalog.TierReview
	default:
		safety = catalog.TierUnknown
	}

	// Category precedence: duplicate, junk dir, extension, downloads,
	// temp folder, then the default.
	var category string
	switch {
	case gid > 0 && !isNewest:
		category = "duplicate"
	case inJunkDir:
		category = junkCategory
	default:
		if key, ok := catalog.KeyForExtension(f.ext); ok {
			category = key
		} else if inDownloads {
			category = "old_download"
		} else if inTemp {
			category = "cache_temp"
		} else {
			category = catalog.DefaultCategory
		}
	}

	var confidence string
	switch {
	case score >= 70:
		confidence = "High"
	case score >= 40:
		confidence = "Medium"
	default:
		confidence = "Low"
	}

	catLabel := catalog.Get(category).Label
	var recommendation string
	switch {
	case safety == catalog.TierSafe && gid > 0 && !isNewest:
		recommendation = "SAFE TO DELETE - Duplicate copy"
	case safety == catalog.TierSafe:
		recommendation = "SAFE TO DELETE - " + catLabel
	default:
		recommendation = "REVIEW - " + catLabel
	}

	return FileInfo{
		Path:            f.path,
		Size:            f.size,
		Accessed:        f.atime.Format(dateFormat),
		Modified:        f.mtime.Format(dateFormat),
		Extension:       f.ext,
		Category:        category,
		Safety:          safety,
		Score:           score,
		Confidence:      confidence,
		Recommendation:  recommendation,
		Reasons:         reasons,
		DuplicateGroup:  gid,
		IsNewestInGroup: isNewest,
	}, true
}

// zPoints converts a z-score above the outlier threshold into points,
// soft-capped per component.
func zPoints(z float64) int {
	pts := int(math.Round(statPointsPerZ * z))
	if pts > statPointsCap {
		return statPointsCap
	}
	return pts
}

func anySegment(segments []string, match func(string) bool) bool {
	for _, s := range segments {
		if match(s) {
			return true
		}
	}
	return false
}

// junkDirFor returns the declared category of the known junk directory
// containing pathLower, if any.
func (a *Advisor) junkDirFor(pathLower string) (string, bool) {
	sep := string(filepath.Separator)
	for _, jd := range a.junkDirs {
		if pathLower == jd.path || strings.HasPrefix(pathLower, jd.path+sep) {
			return jd.category, true
		}
	}
	return "", false
}
