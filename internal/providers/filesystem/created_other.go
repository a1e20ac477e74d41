//go:build !linux && !darwin && !windows

package filesystem

import (
	"os"
	"time"
)

func createdTime(_ string, info os.FileInfo) time.Time {
	return info.ModTime()
}
