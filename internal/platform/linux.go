package platform

import "path/filepath"

// getLinuxInfo returns the Linux-style lists, also used as the
// fallback for unrecognized platforms.
func getLinuxInfo(homeDir string) *Info {
	return &Info{
		OS:      Linux,
		HomeDir: homeDir,
		ProtectedDirs: []string{
			"/usr/bin", "/usr/lib", "/usr/lib64", "/usr/sbin",
			"/usr/share", "/usr/include",
			"/bin", "/sbin", "/lib", "/lib64", "/lib32",
			"/etc", "/boot",
			"/var/lib/dpkg", "/var/lib/apt/lists",
			"/var/lib/rpm",
			"/snap/core", "/snap/snapd",
			"/proc", "/sys", "/dev", "/run",
		},
		ProtectedExtensions: []string{
			".conf", ".cfg", ".ini", ".service", ".timer", ".socket", ".mount",
			".so", ".ko", ".deb", ".rpm", ".desktop",
		},
		JunkDirs: []JunkDir{
			{filepath.Join(homeDir, ".cache"), "cache_temp", "User cache directory"},
			{"/var/cache/apt/archives", "package_cache", "APT package cache"},
			{"/var/cache/apt/archives/partial", "package_cache", "APT partial downloads"},
			{"/var/cache/PackageKit", "package_cache", "PackageKit cache"},
			{"/var/lib/snapd/cache", "package_cache", "Snap daemon cache"},
			{filepath.Join(homeDir, ".local/share/Trash"), "cache_temp", "Trash contents"},
			{"/var/log", "log_file", "System logs"},
			{"/tmp", "cache_temp", "Temporary files"},
			{"/var/tmp", "cache_temp", "Persistent temp files"},
			{"/var/lib/docker/overlay2", "cache_temp", "Docker image layers"},
		},
	}
}
