package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Manifest maps video ids to their frame counts. It mirrors the on-disk
// split files (train.json and friends) used by the training pipeline.
type Manifest map[string]int

// LoadManifest reads a json manifest and validates every frame count.
func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if len(m) == 0 {
		return nil, fmt.Errorf("manifest %s lists no videos", path)
	}
	for id, count := range m {
		if count < 1 {
			return nil, fmt.Errorf("video %s has invalid frame count %d", id, count)
		}
	}
	return m, nil
}

// VideoIDs returns the manifest's ids in sorted order so item indices are
// stable across runs.
func (m Manifest) VideoIDs() []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
