package store

import (
	"fmt"
	"io"
	"os"
	"time"
)

// backupSuffix marks copies of data that could not be loaded
const backupSuffix = ".corrupt-"

// backupPath returns a sibling of path stamped with at
func backupPath(path string, at time.Time) string {
	return path + backupSuffix + at.Format("20060102-150405")
}

// copyFile copies src to dst, failing if dst already exists
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return fmt.Errorf("copy %s: %w", src, err)
	}
	return out.Close()
}
