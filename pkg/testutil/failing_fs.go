package testutil

import (
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/ferdium/ferdium-themes/pkg/types"
)

// FailingFS wraps a types.FS and returns injected errors for chosen paths
type FailingFS struct {
	types.FS

	mu     sync.RWMutex
	writes map[string]error
	reads  map[string]error
}

// NewFailingFS wraps base
func NewFailingFS(base types.FS) *FailingFS {
	return &FailingFS{
		FS:     base,
		writes: make(map[string]error),
		reads:  make(map[string]error),
	}
}

// FailWrite makes WriteFile and MkdirAll on path return err
func (f *FailingFS) FailWrite(path string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes[filepath.Clean(path)] = err
}

// FailRead makes ReadFile on path return err
func (f *FailingFS) FailRead(path string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reads[filepath.Clean(path)] = err
}

func (f *FailingFS) writeErr(path string) error {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.writes[filepath.Clean(path)]
}

func (f *FailingFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err := f.writeErr(name); err != nil {
		return &fs.PathError{Op: "write", Path: name, Err: err}
	}
	return f.FS.WriteFile(name, data, perm)
}

func (f *FailingFS) MkdirAll(path string, perm fs.FileMode) error {
	if err := f.writeErr(path); err != nil {
		return &fs.PathError{Op: "mkdir", Path: path, Err: err}
	}
	return f.FS.MkdirAll(path, perm)
}

func (f *FailingFS) ReadFile(name string) ([]byte, error) {
	f.mu.RLock()
	err := f.reads[filepath.Clean(name)]
	f.mu.RUnlock()
	if err != nil {
		return nil, &fs.PathError{Op: "read", Path: name, Err: err}
	}
	return f.FS.ReadFile(name)
}
