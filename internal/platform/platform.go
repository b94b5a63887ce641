// Package platform centralizes OS-specific knowledge: protected
// system locations, protected extensions, and known junk directories.
package platform

import (
	"os"
	"path/filepath"
	"runtime"
)

// Platform represents the operating system platform
type Platform string

const (
	Linux   Platform = "linux"
	Windows Platform = "windows"
	Unknown Platform = "unknown"
)

// JunkDir is a directory whose contents are pre-classified into a
// category without extension-based inference.
type JunkDir struct {
	Path        string
	Category    string
	Description string
}

// Info contains platform-specific path knowledge for the advisor
type Info struct {
	OS                  Platform
	HomeDir             string
	ProtectedDirs       []string
	ProtectedExtensions []string
	JunkDirs            []JunkDir
}

// Detect returns the current platform
func Detect() Platform {
	switch runtime.GOOS {
	case "windows":
		return Windows
	case "linux":
		return Linux
	default:
		return Unknown
	}
}

// GetInfo returns platform-specific information. Platforms without
// their own lists fall back to the Linux-style lists.
func GetInfo() (*Info, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	platform := Detect()
	if platform == Windows {
		return getWindowsInfo(homeDir), nil
	}
	return getLinuxInfo(homeDir), nil
}

// DataDir returns the per-user application data directory
func DataDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	var base string
	if Detect() == Windows {
		base = os.Getenv("LOCALAPPDATA")
		if base == "" {
			base = homeDir
		}
	} else {
		base = os.Getenv("XDG_DATA_HOME")
		if base == "" {
			base = filepath.Join(homeDir, ".local", "share")
		}
	}

	return filepath.Join(base, "storagecleaner"), nil
}
