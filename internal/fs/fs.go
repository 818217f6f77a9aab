// Package fs provides the filesystem abstraction used by the task store.
//
// The main types are:
//   - [FS]: interface for the handful of operations the store needs
//   - [Real]: production implementation using the [os] package
//   - [Recorder]: testing implementation that counts writes and can fail them
//
// Example usage:
//
//	fsys := fs.NewReal()
//	data, err := fsys.ReadFile("tasks.json")
//	if err != nil {
//	    return err
//	}
package fs

import "os"

// FS defines the filesystem operations needed to load and persist a
// single backing file.
//
// All methods mirror their [os] package equivalents but can be intercepted
// for testing.
type FS interface {
	// ReadFile reads an entire file into memory. See [os.ReadFile].
	ReadFile(path string) ([]byte, error)

	// WriteFileAtomic replaces the file at path with data.
	// Uses a temp file + rename so readers never observe a partial write.
	// perm is applied after the rename.
	WriteFileAtomic(path string, data []byte, perm os.FileMode) error

	// MkdirAll creates a directory and all parents. See [os.MkdirAll].
	// No error if the directory already exists.
	MkdirAll(path string, perm os.FileMode) error

	// Exists reports whether a file or directory exists.
	// Returns (false, nil) if not found, (false, err) on other errors.
	Exists(path string) (bool, error)
}
