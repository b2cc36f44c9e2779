// Package fsutil provides the file-system primitives shared by the
// durable state writers: scoped appends and atomic whole-file writes.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// DirPerm is the mode used for created state directories.
const DirPerm = 0o755

// FilePerm is the mode used for created state files.
const FilePerm = 0o644

// EnsureDir creates the directory (and any parents) if it does not
// already exist.
func EnsureDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("directory path cannot be empty")
	}
	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// AppendLine appends a single line to the file at path as one scoped
// operation: open in append mode, write, close. A failure on one
// append never leaves the file open for later writes to trip over.
func AppendLine(path, line string) error {
	file, err := os.OpenFile(filepath.Clean(path), os.O_APPEND|os.O_CREATE|os.O_WRONLY, FilePerm)
	if err != nil {
		return fmt.Errorf("failed to open %s for append: %w", path, err)
	}

	if _, err := fmt.Fprintln(file, line); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to append to %s: %w", path, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

// WriteFileAtomic replaces the file at path with data by writing to a
// temporary file in the same directory, syncing it, and renaming it
// over the target.
func WriteFileAtomic(path string, data []byte) (err error) {
	cleanPath := filepath.Clean(path)
	dir := filepath.Dir(cleanPath)

	tmpFile, err := os.CreateTemp(dir, "authsim-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file in %s: %w", dir, err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("failed to write to temporary file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("failed to sync temporary file to disk: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, cleanPath); err != nil {
		return fmt.Errorf("failed to rename temporary file to %s: %w", cleanPath, err)
	}

	return nil
}
