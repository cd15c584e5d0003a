// Package storage provides whole-file JSON snapshot persistence.
//
// Persistence model:
//   - Each store is a single JSON file rewritten in full on every mutation.
//   - A missing file reads as the zero value ("no data yet", not an error).
//   - A write produces a complete snapshot; there is no append mode.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Load reads the JSON file at path into v. A missing file leaves v untouched
// and returns nil. A file that exists but cannot be read or parsed returns an
// error; callers that want permissive degradation treat it as empty state.
func Load(path string, v any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// Save writes v as indented JSON to path, replacing any previous content.
// The parent directory is created if needed.
func Save(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
