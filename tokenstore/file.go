package tokenstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

// File stores the token in a small JSON object on disk, one entry per key.
// Writes go through a temp file and a rename so a crash never leaves a
// half-written file behind.
type File struct {
	mu   sync.Mutex
	path string
}

// NewFile returns a file-backed store at path, creating the parent directory.
func NewFile(path string) (*File, error) {
	if path == "" {
		return nil, errors.New("token file path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	return &File{path: path}, nil
}

// Path returns the file location.
func (f *File) Path() string { return f.path }

// Load implements Store.
func (f *File) Load() (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	entries, err := f.read()
	if err != nil {
		return "", false, err
	}
	tok, ok := entries[Key]
	return tok, ok, nil
}

// Save implements Store.
func (f *File) Save(token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	entries, err := f.read()
	if err != nil {
		return err
	}
	entries[Key] = token
	return writeJSONAtomic(f.path, entries)
}

// Remove implements Store.
func (f *File) Remove() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	entries, err := f.read()
	if err != nil {
		return err
	}
	if _, ok := entries[Key]; !ok {
		return nil
	}
	delete(entries, Key)
	return writeJSONAtomic(f.path, entries)
}

func (f *File) read() (map[string]string, error) {
	b, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, err
	}
	entries := map[string]string{}
	if len(b) == 0 {
		return entries, nil
	}
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, fmt.Errorf("read token file %s: %w", f.path, err)
	}
	return entries, nil
}

func writeJSONAtomic(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return err
	}

	if err := os.Rename(tmp, path); err == nil {
		return nil
	}

	defer os.Remove(tmp)

	if runtime.GOOS == "windows" {
		_ = os.Remove(path)
		return os.Rename(tmp, path)
	}
	return os.Rename(tmp, path)
}
