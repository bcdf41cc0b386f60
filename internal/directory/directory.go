package directory

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"usermap/internal/domain"
	"usermap/internal/observability"
)

const usersFile = "users.json"

// FileDirectory persists hostmask→account entries as JSON on disk.
type FileDirectory struct {
	dir string
	log *observability.Logger
}

// New returns a FileDirectory rooted at dir.
func New(dir string, log *observability.Logger) *FileDirectory {
	if log == nil {
		log = observability.Nop()
	}
	return &FileDirectory{dir: dir, log: log}
}

// Add registers a hostmask under an account name, overwriting any previous
// registration of the same mask.
func (d *FileDirectory) Add(mask, account string) error {
	path := filepath.Join(d.dir, usersFile)
	entries := make(map[string]string)
	if err := readJSON(path, &entries); err != nil {
		return err
	}
	entries[mask] = account
	return writeJSON(path, entries, 0o600)
}

// Lookup implements domain.AccountLookup. A prefix matches when either the
// full prefix or its ident@host part is registered.
func (d *FileDirectory) Lookup(prefix string) (string, bool, error) {
	path := filepath.Join(d.dir, usersFile)
	entries := make(map[string]string)
	if err := readJSON(path, &entries); err != nil {
		return "", false, err
	}

	if account, ok := entries[prefix]; ok {
		return account, true, nil
	}
	if _, identHost, err := domain.SplitPrefix(prefix); err == nil {
		if account, ok := entries[identHost]; ok {
			return account, true, nil
		}
	}
	d.log.Debug("prefix has no registered account", "prefix", prefix)
	return "", false, nil
}

// readJSON best-effort reads path into out; a missing file is not an error.
func readJSON(path string, out any) error {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

// writeJSON writes JSON via a temp file then rename.
func writeJSON(path string, v any, mode os.FileMode) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, mode); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Compile-time assertion that FileDirectory implements domain.AccountLookup.
var _ domain.AccountLookup = (*FileDirectory)(nil)
