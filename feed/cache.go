package feed

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

// OrderCache remembers a shuffled order for one feed fingerprint
type OrderCache struct {
	Hash  string   `json:"hash"`
	Order []string `json:"order"`
}

// LoadCache reads the cache at path
// A missing or empty file yields a zero cache and no error
func LoadCache(path string) (OrderCache, error) {
	var c OrderCache
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return c, fmt.Errorf("read order cache: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return c, nil
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return OrderCache{}, fmt.Errorf("decode order cache: %w", err)
	}
	return c, nil
}

// SaveCache writes the cache atomically, creating the parent directory
func SaveCache(path string, c OrderCache) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("mkdir order cache: %w", err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encode order cache: %w", err)
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write order cache: %w", err)
	}
	return nil
}
