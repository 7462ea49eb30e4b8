// Package storage provides the file operations behind recent's JSON and TOML
// files: parent directory creation, indented JSON encoding, atomic writes,
// and JSON loading that tells a missing file apart from a malformed one.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrMalformed is returned by LoadJSON when the file was read but its
// contents do not decode into the destination.
var ErrMalformed = errors.New("malformed document")

// EnsureParent creates the parent directory of path and any missing ancestors.
func EnsureParent(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}

// Encode marshals v as two-space indented JSON.
func Encode(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// WriteAtomic writes data to a temp file next to path and renames it over
// path. The parent directory must already exist.
func WriteAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(tmpPath, 0o600); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath) // Clean up temp file on failure
		return err
	}
	return nil
}

// LoadJSON reads JSON from path into dest.
// Read errors are returned unwrapped, so os.ErrNotExist can be checked with
// errors.Is. Decode errors wrap ErrMalformed.
func LoadJSON(path string, dest any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil
}
