//go:build windows

package advisor

import (
	"os"
	"syscall"
	"time"
)

// accessTime extracts the last access time, falling back to the
// modification time when platform stat data is unavailable.
func accessTime(info os.FileInfo) time.Time {
	stat, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return info.ModTime()
	}
	return time.Unix(0, stat.LastAccessTime.Nanoseconds())
}
