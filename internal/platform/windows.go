package platform

import (
	"os"
	"path/filepath"
)

// getWindowsInfo builds the Windows lists from environment variables,
// with standard fallbacks when they are unset.
func getWindowsInfo(homeDir string) *Info {
	windir := os.Getenv("WINDIR")
	if windir == "" {
		windir = `C:\Windows`
	}
	progFiles := os.Getenv("ProgramFiles")
	if progFiles == "" {
		progFiles = `C:\Program Files`
	}
	progFiles86 := os.Getenv("ProgramFiles(x86)")
	if progFiles86 == "" {
		progFiles86 = `C:\Program Files (x86)`
	}

	info := &Info{
		OS:      Windows,
		HomeDir: homeDir,
		ProtectedDirs: []string{
			windir,
			filepath.Join(windir, "System32"),
			filepath.Join(windir, "SysWOW64"),
			filepath.Join(windir, "WinSxS"),
			progFiles,
			progFiles86,
			`C:\ProgramData\Microsoft`,
		},
		ProtectedExtensions: []string{
			".conf", ".cfg", ".ini", ".service", ".timer", ".socket", ".mount",
			".sys", ".dll", ".drv", ".msi", ".reg", ".cat",
		},
		JunkDirs: []JunkDir{
			{os.TempDir(), "cache_temp", "User temp directory"},
		},
	}

	if localApp := os.Getenv("LOCALAPPDATA"); localApp != "" {
		info.JunkDirs = append(info.JunkDirs, JunkDir{
			filepath.Join(localApp, "Temp"), "cache_temp", "LocalAppData Temp",
		})
	}

	return info
}
