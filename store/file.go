package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File persists the credential as a JSON document on disk. The file is
// written with 0600 permissions; the parent directory is created on first
// Save.
type File struct {
	path string
}

// NewFile creates a file-backed store at path.
func NewFile(path string) *File {
	return &File{path: path}
}

// DefaultPath returns the conventional credential location under the user's
// configuration directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("store: resolve config dir: %w", err)
	}
	return filepath.Join(dir, "tbadmin", "credentials.json"), nil
}

// Path returns the location this store reads and writes.
func (f *File) Path() string {
	return f.path
}

// Load implements [Store]. A missing file and an unreadable document both
// load as (nil, nil): a broken credential file must never lock the operator
// out of the console.
func (f *File) Load(_ context.Context) (*Credential, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("store: read %s: %w", f.path, err)
	}

	var cred Credential
	if err := json.Unmarshal(data, &cred); err != nil {
		return nil, nil
	}
	if cred.AccessToken == "" {
		return nil, nil
	}
	return &cred, nil
}

// Save implements [Store].
func (f *File) Save(_ context.Context, cred *Credential) error {
	if cred == nil {
		return errors.New("store: nil credential")
	}
	data, err := json.MarshalIndent(cred, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode credential: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("store: create %s: %w", filepath.Dir(f.path), err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("store: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("store: replace %s: %w", f.path, err)
	}
	return nil
}

// Clear implements [Store]. Clearing an absent file succeeds.
func (f *File) Clear(_ context.Context) error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("store: remove %s: %w", f.path, err)
	}
	return nil
}
