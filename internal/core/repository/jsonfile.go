package repository

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

// loadCollection reads a JSON array file into a slice. A missing or
// corrupted file is treated as an empty collection: the store fails open
// to an empty menu rather than refusing to start.
func loadCollection[T any](path string) []T {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		log.Printf("Collection file %s is corrupted, treating as empty: %v", path, err)
		return nil
	}
	return items
}

// saveCollection atomically replaces the collection file. The new contents
// are written to a temp file in the same directory and renamed into place,
// so readers only ever observe a fully-written version.
func saveCollection[T any](path string, items []T) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal collection: %w", err)
	}
	tmp := fmt.Sprintf("%s.%d.tmp", path, time.Now().UnixNano())
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace collection file: %w", err)
	}
	return nil
}
