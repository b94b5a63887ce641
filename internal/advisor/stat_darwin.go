//go:build darwin

package advisor

import (
	"os"
	"syscall"
	"time"
)

// accessTime extracts the last access time, falling back to the
// modification time when platform stat data is unavailable.
func accessTime(info os.FileInfo) time.Time {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return info.ModTime()
	}
	return time.Unix(stat.Atimespec.Sec, stat.Atimespec.Nsec)
}
