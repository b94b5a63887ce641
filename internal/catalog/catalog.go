// Package catalog defines the static file categories, extension
// mappings, and folder-name sets used by the deletion advisor.
package catalog

// SafetyTier classifies how safe a file is to delete
type SafetyTier string

const (
	TierProtected SafetyTier = "protected"
	TierSafe      SafetyTier = "safe"
	TierReview    SafetyTier = "review"
	TierUnknown   SafetyTier = "unknown"
)

// Category describes a semantic file category
type Category struct {
	Key           string
	Label         string
	Description   string
	DefaultSafety SafetyTier
}

// DefaultCategory is the fallback for files that match no other category
const DefaultCategory = "large_unused"

// Categories is the fixed catalog of file categories, keyed by category key
var Categories = map[string]Category{
	"cache_temp": {"cache_temp", "Cache & Temp Files",
		"Temporary and cache files that can be safely removed", TierSafe},
	"duplicate": {"duplicate", "Duplicate Files",
		"Duplicate copies of files wasting space", TierSafe},
	"old_download": {"old_download", "Old Downloads",
		"Old files in download directories", TierReview},
	"large_unused": {"large_unused", "Large Unused Files",
		"Large files not accessed or modified in a long time", TierReview},
	"log_file": {"log_file", "Log Files",
		"Log files that can usually be cleaned up", TierSafe},
	"package_cache": {"package_cache", "Package Cache",
		"Cached package manager downloads", TierSafe},
	"old_media": {"old_media", "Old Media Files",
		"Old video, audio, or image files", TierReview},
	"archive": {"archive", "Archive Files",
		"Compressed archives (.zip, .iso, .tar, etc.)", TierReview},
	"build_artifact": {"build_artifact", "Build Artifacts",
		"Compiled objects, bytecode, and build outputs", TierSafe},
}

// extensionCategories maps lowercased extensions (with dot) to category keys
var extensionCategories = map[string]string{
	// cache_temp
	".tmp": "cache_temp", ".temp": "cache_temp", ".cache": "cache_temp",
	".bak": "cache_temp", ".old": "cache_temp", ".dmp": "cache_temp",
	".swp": "cache_temp", ".swo": "cache_temp",

	// log_file
	".log": "log_file",

	// archive
	".iso": "archive", ".zip": "archive", ".rar": "archive",
	".7z": "archive", ".tar": "archive", ".gz": "archive",
	".bz2": "archive", ".xz": "archive", ".tgz": "archive",
	".tbz2": "archive", ".zst": "archive",

	// old_media
	".mp4": "old_media", ".avi": "old_media", ".mkv": "old_media",
	".mov": "old_media", ".wmv": "old_media", ".flv": "old_media",
	".webm": "old_media", ".flac": "old_media", ".wav": "old_media",
	".m4a": "old_media", ".m4v": "old_media",

	// build_artifact
	".o": "build_artifact", ".obj": "build_artifact",
	".pyc": "build_artifact", ".pyo": "build_artifact",
	".class": "build_artifact", ".elc": "build_artifact",
	".whl": "build_artifact",
}

// junkExtensions score high regardless of category
var junkExtensions = map[string]struct{}{
	".tmp": {}, ".temp": {}, ".cache": {}, ".bak": {}, ".old": {},
	".dmp": {}, ".swp": {}, ".swo": {}, ".log": {},
}

// archiveExtensions is the small hard-coded set used as a rule fallback
var archiveExtensions = map[string]struct{}{
	".iso": {}, ".zip": {}, ".rar": {}, ".7z": {}, ".tar": {}, ".gz": {},
}

// junkFolderNames mark download-like path segments
var junkFolderNames = map[string]struct{}{
	"downloads": {}, "download": {},
}

// tempFolderNames mark temp/cache-like path segments
var tempFolderNames = map[string]struct{}{
	"temp": {}, "tmp": {}, "cache": {}, ".cache": {}, "__pycache__": {},
}

// Get returns the category for a key, falling back to the default
// category for unknown keys.
func Get(key string) Category {
	if cat, ok := Categories[key]; ok {
		return cat
	}
	return Categories[DefaultCategory]
}

// ForExtension returns the category mapped to an extension, if any.
// The extension must be lowercased and include the leading dot.
func ForExtension(ext string) (Category, bool) {
	key, ok := extensionCategories[ext]
	if !ok {
		return Category{}, false
	}
	return Categories[key], true
}

// KeyForExtension returns the category key mapped to an extension, if any.
func KeyForExtension(ext string) (string, bool) {
	key, ok := extensionCategories[ext]
	return key, ok
}

// IsJunkExtension reports whether ext is in the junk extension set
func IsJunkExtension(ext string) bool {
	_, ok := junkExtensions[ext]
	return ok
}

// IsArchiveExtension reports whether ext is in the hard-coded archive set
func IsArchiveExtension(ext string) bool {
	_, ok := archiveExtensions[ext]
	return ok
}

// IsJunkFolderName reports whether a lowercased path segment looks like
// a downloads folder
func IsJunkFolderName(segment string) bool {
	_, ok := junkFolderNames[segment]
	return ok
}

// IsTempFolderName reports whether a lowercased path segment looks like
// a temp or cache folder
func IsTempFolderName(segment string) bool {
	_, ok := tempFolderNames[segment]
	return ok
}
