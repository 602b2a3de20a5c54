package u

import (
	"io"
	"os"
	"path/filepath"
)

// FileExists returns true if path exists and is a regular file
func FileExists(path string) bool {
	st, err := os.Lstat(path)
	return err == nil && st.Mode().IsRegular()
}

// FileSize gets file size, -1 if file doesn't exist
func FileSize(path string) int64 {
	st, err := os.Lstat(path)
	if err == nil {
		return st.Size()
	}
	return -1
}

// CloseNoError is like io.Closer Close() but ignores an error
// use as: defer CloseNoError(f)
func CloseNoError(f io.Closer) {
	_ = f.Close()
}

// WriteFileAtomic creates path by calling fn with a writer to a temporary
// file in the same directory and renaming it to path if everything succeeded.
// If fn, sync, close or rename fails, the temporary file is removed and
// path is not touched.
// Some references:
// - https://www.slideshare.net/nan1nan1/eat-my-data
// - https://lwn.net/Articles/457667/
func WriteFileAtomic(path string, fn func(w io.Writer) error) (err error) {
	dir, fName := filepath.Split(path)
	dir, err = filepath.Abs(dir)
	if err != nil {
		return err
	}
	if fName == "" {
		return &os.PathError{Op: "open", Path: path, Err: os.ErrInvalid}
	}
	tmpFile, err := os.CreateTemp(dir, fName)
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()
	didRename := false
	defer func() {
		if !didRename {
			// ignoring error on this one
			_ = os.Remove(tmpPath)
		}
	}()

	err = fn(tmpFile)
	if err == nil {
		// os.CreateTemp uses 0600, we want what os.Create would give
		err = tmpFile.Chmod(0644)
	}
	// https://www.joeshaw.org/dont-defer-close-on-writable-files/
	errSync := tmpFile.Sync()
	errClose := tmpFile.Close()
	if err == nil {
		err = errSync
	}
	if err == nil {
		err = errClose
	}
	if err != nil {
		return err
	}

	// this will over-write path (if it exists)
	err = os.Rename(tmpPath, path)
	if err != nil {
		return err
	}
	didRename = true
	// for extra protection against crashes elsewhere,
	// sync directory after rename
	fdir, _ := os.Open(dir)
	if fdir != nil {
		// ignore errors as those are a nice have, not must have
		_ = fdir.Sync()
		_ = fdir.Close()
	}
	return nil
}
