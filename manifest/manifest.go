// Package manifest parses the build-output asset manifest the agent reads
// at install time: a JSON document whose "files" field maps logical names
// to served URLs, e.g.
//
//	{"files": {"main.js": "/static/main.abc123.js"}}
//
// An optional "entrypoints" list is accepted and merged as well.
package manifest

import (
	"encoding/json"
	"fmt"
	"sort"
)

type Manifest struct {
	Files       map[string]string `json:"files"`
	Entrypoints []string          `json:"entrypoints,omitempty"`
}

// Parse decodes b. A document without a files field is valid and yields an
// empty manifest; malformed JSON is an error.
func Parse(b []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("manifest: parse: %w", err)
	}
	return &m, nil
}

// URLs returns every non-empty URL the manifest declares, deduplicated and
// sorted for deterministic precache order.
func (m *Manifest) URLs() []string {
	if m == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(m.Files)+len(m.Entrypoints))
	out := make([]string, 0, len(m.Files)+len(m.Entrypoints))
	add := func(u string) {
		if u == "" {
			return
		}
		if _, ok := seen[u]; ok {
			return
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	for _, u := range m.Files {
		add(u)
	}
	for _, u := range m.Entrypoints {
		add(u)
	}
	sort.Strings(out)
	return out
}

// Merge combines manifest URLs with the static core list, preserving core
// order first, deduplicating, and dropping empty entries.
func Merge(core, discovered []string) []string {
	seen := make(map[string]struct{}, len(core)+len(discovered))
	out := make([]string, 0, len(core)+len(discovered))
	for _, lists := range [][]string{core, discovered} {
		for _, u := range lists {
			if u == "" {
				continue
			}
			if _, ok := seen[u]; ok {
				continue
			}
			seen[u] = struct{}{}
			out = append(out, u)
		}
	}
	return out
}
