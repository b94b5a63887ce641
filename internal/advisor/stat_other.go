//go:build !linux && !darwin && !windows

package advisor

import (
	"os"
	"time"
)

// accessTime has no portable source on this platform; the modification
// time is the closest available signal.
func accessTime(info os.FileInfo) time.Time {
	return info.ModTime()
}
