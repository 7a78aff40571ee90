package utils

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"time"
)

// AtomicWriteFile writes content to a temp file beside path and renames it
// into place, so readers never observe a partially written file.
func AtomicWriteFile(path string, content []byte, mode fs.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		os.Remove(tmpPath)
		return err
	}

	err = os.Rename(tmpPath, path)
	if err == nil {
		return nil
	}
	if runtime.GOOS != "windows" {
		os.Remove(tmpPath)
		return err
	}

	// Windows refuses to rename over a file that is open elsewhere; retry briefly.
	last := err
	for i := 0; i < 5; i++ {
		if _, statErr := os.Stat(path); statErr == nil {
			_ = os.Remove(path)
		}
		if last = os.Rename(tmpPath, path); last == nil {
			return nil
		}
		time.Sleep(50 * time.Millisecond)
	}
	os.Remove(tmpPath)
	return last
}
