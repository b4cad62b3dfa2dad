package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore persists the login between CLI invocations. The file holds the
// email and raw token; the session is rebuilt from the token's claims on
// load.
type FileStore struct {
	path string
}

type storedCredentials struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

// NewFileStore points at the credentials file. The parent directory is
// created on first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Save writes the credentials, readable by the owner only.
func (fs *FileStore) Save(email, token string) error {
	if err := os.MkdirAll(filepath.Dir(fs.path), 0o700); err != nil {
		return fmt.Errorf("auth: create credentials dir: %w", err)
	}
	raw, err := json.Marshal(storedCredentials{Email: email, Token: token})
	if err != nil {
		return err
	}
	if err := os.WriteFile(fs.path, raw, 0o600); err != nil {
		return fmt.Errorf("auth: write credentials: %w", err)
	}
	return nil
}

// Load rebuilds the session from the stored credentials. A missing file
// yields ErrNotAuthenticated; a corrupt one is treated the same after being
// removed, matching how a stale browser login is simply discarded.
func (fs *FileStore) Load() (*Session, error) {
	raw, err := os.ReadFile(fs.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("auth: read credentials: %w", err)
	}
	var creds storedCredentials
	if err := json.Unmarshal(raw, &creds); err != nil {
		_ = os.Remove(fs.path)
		return nil, ErrNotAuthenticated
	}
	session, err := NewSession(creds.Email, creds.Token)
	if err != nil {
		_ = os.Remove(fs.path)
		return nil, ErrNotAuthenticated
	}
	return session, nil
}

// Clear removes the stored credentials. Missing files are fine.
func (fs *FileStore) Clear() error {
	err := os.Remove(fs.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("auth: clear credentials: %w", err)
	}
	return nil
}
