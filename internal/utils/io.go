package utils

import (
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/shirou/gopsutil/disk"
)

// SafeClose closes a io.Closer and logs an error if something fails
func SafeClose(c io.Closer) error {
	if err := c.Close(); err != nil {
		LogWarning("warning: error closing: %v", err)
		return err
	}
	return nil
}

func SafeRemove(path string) error {
	if err := os.Remove(path); err != nil {
		LogWarning("warning: could not remove file %s: %v", path, err)
		return err
	}
	return nil
}

// GetNewline returns platform-native newline string.
func GetNewline() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// FreeDiskSpace returns the free bytes on the filesystem that will hold path.
// The file itself does not have to exist yet.
func FreeDiskSpace(path string) (uint64, error) {
	dir := filepath.Dir(path)
	abs, err := filepath.Abs(dir)
	if err != nil {
		return 0, err
	}
	usage, err := disk.Usage(abs)
	if err != nil {
		return 0, err
	}
	return usage.Free, nil
}

// CheckDiskSpace warns when the estimated output would not fit on the target
// filesystem. It never fails the run; it reports false when space is short.
func CheckDiskSpace(path string, estimatedBytes uint64) bool {
	free, err := FreeDiskSpace(path)
	if err != nil {
		LogDebug("Could not determine free disk space for %s: %v", path, err)
		return true
	}
	if estimatedBytes > free {
		LogWarning("Estimated output size %.2f MB exceeds free disk space %.2f MB",
			float64(estimatedBytes)/1e6, float64(free)/1e6)
		return false
	}
	LogDebug("Estimated output size %.2f MB, free disk space %.2f MB",
		float64(estimatedBytes)/1e6, float64(free)/1e6)
	return true
}
