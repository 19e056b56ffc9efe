package tierstore

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileBackend stores the tier as the sole content of a small file.
// This is the default backend: the original deployment shape kept the tier
// in a single browser-storage cell, and a file is the server-side analog.
type FileBackend struct {
	path string
}

// NewFileBackend creates a backend writing to path. Parent directories are
// created on first Save, not here.
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

func (b *FileBackend) Load(ctx context.Context) (string, error) {
	data, err := os.ReadFile(b.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// Save writes through a temp file and rename so a crash mid-write cannot
// leave a truncated value behind.
func (b *FileBackend) Save(ctx context.Context, tier string) error {
	if err := os.MkdirAll(filepath.Dir(b.path), 0o755); err != nil {
		return err
	}
	tmp := b.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(tier+"\n"), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, b.path)
}
