// Package fsutil provides one-shot file access to the console's storage.
//
// All paths are slash separated and relative to the storage root, which on
// the real device is the mounted SD card. Reads and writes are attempted
// exactly once, there are no retries.
package fsutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Storage is the raw file read/write primitive consumed by the firmware.
// A missing file is reported as an error satisfying errors.Is(err,
// fs.ErrNotExist).
type Storage interface {
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte) error
}

// Dir is a Storage backed by a directory tree on the host filesystem.
type Dir string

func (d Dir) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(string(d), filepath.FromSlash(name)))
}

func (d Dir) WriteFile(name string, data []byte) error {
	path := filepath.Join(string(d), filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Mem is an in-memory Storage. The zero value is empty and usable.
type Mem struct {
	files map[string][]byte

	// WriteErr, if set, is returned by every WriteFile call. Used to
	// exercise storage failure paths.
	WriteErr error
}

func (m *Mem) ReadFile(name string) ([]byte, error) {
	data, ok := m.files[name]
	if !ok {
		return nil, fmt.Errorf("read %s: %w", name, fs.ErrNotExist)
	}
	return append([]byte(nil), data...), nil
}

func (m *Mem) WriteFile(name string, data []byte) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	if m.files == nil {
		m.files = make(map[string][]byte)
	}
	m.files[name] = append([]byte(nil), data...)
	return nil
}
