// Package feed loads the treatment list shown on the rail and keeps its display order stable per session
package feed

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

//go:embed default.json
var defaultFeed []byte

// ErrEmptyFeed is returned when a feed holds no usable entries
var ErrEmptyFeed = errors.New("feed: no treatments")

// Treatment is one rail entry
type Treatment struct {
	Treatment string `json:"treatment"`
	URL       string `json:"url"`
}

// Label returns the display text
func (t Treatment) Label() string {
	return t.Treatment
}

// Parse decodes a JSON array of treatments, dropping entries without a name
func Parse(data []byte) ([]Treatment, error) {
	var raw []Treatment
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode feed: %w", err)
	}

	out := make([]Treatment, 0, len(raw))
	for _, t := range raw {
		t.Treatment = strings.TrimSpace(t.Treatment)
		if t.Treatment == "" {
			continue
		}
		out = append(out, t)
	}
	if len(out) == 0 {
		return nil, ErrEmptyFeed
	}
	return out, nil
}

// LoadFile reads and parses a feed file
func LoadFile(path string) ([]Treatment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read feed: %w", err)
	}
	return Parse(data)
}

// Default returns the built-in treatment list
func Default() []Treatment {
	out, err := Parse(defaultFeed)
	if err != nil {
		panic(fmt.Errorf("embedded feed invalid: %w", err))
	}
	return out
}

// Fingerprint identifies a feed revision by size and first URL
func Fingerprint(data []Treatment) string {
	first := ""
	if len(data) > 0 {
		first = data[0].URL
	}
	return fmt.Sprintf("%d_%s", len(data), first)
}

// Double repeats the list once so the rail is wider than the viewport
func Double(data []Treatment) []Treatment {
	out := make([]Treatment, 0, len(data)*2)
	out = append(out, data...)
	return append(out, data...)
}
