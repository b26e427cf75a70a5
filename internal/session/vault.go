// Package session holds the client's cached snapshot of the authenticated
// user and persists it across runs. The backend owns the user; the snapshot
// here is only a cache, invalidated by explicit login, logout or profile
// update.
package session

import (
	"errors"
	"os"
	"path/filepath"
)

// Vault is the durable storage behind the session store: one opaque blob
// under one well-known location, the localStorage analogue.
type Vault interface {
	// Load returns the stored blob. found is false when nothing is stored;
	// that is not an error.
	Load() (data []byte, found bool, err error)
	Save(data []byte) error
	Clear() error
}

// FileVault keeps the blob in a single file. Parent directories are created
// on first save.
type FileVault struct {
	path string
}

func NewFileVault(path string) *FileVault {
	return &FileVault{path: path}
}

func (v *FileVault) Load() ([]byte, bool, error) {
	data, err := os.ReadFile(v.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}

		return nil, false, err
	}

	if len(data) == 0 {
		return nil, false, nil
	}

	return data, true, nil
}

func (v *FileVault) Save(data []byte) error {
	if dir := filepath.Dir(v.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}

	return os.WriteFile(v.path, data, 0o600)
}

func (v *FileVault) Clear() error {
	err := os.Remove(v.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	return nil
}
