package session

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/engine"
)

// SaveManager persists one snapshot per profile as a JSON file. It is
// the production engine.Persistence.
type SaveManager struct {
	path string
}

// NewSaveManager points the manager at its snapshot file.
func NewSaveManager(path string) *SaveManager {
	return &SaveManager{path: path}
}

// Save writes the snapshot atomically: a temp file next to the target,
// then a rename. A crash mid-write leaves the previous save intact.
func (m *SaveManager) Save(snap engine.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	tmp := m.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return os.Rename(tmp, m.path)
}

// Load reads the snapshot back, reporting false when none exists.
func (m *SaveManager) Load() (*engine.Snapshot, bool, error) {
	data, err := os.ReadFile(m.path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snap engine.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, false, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return &snap, true, nil
}

// Clear removes the snapshot after a final death.
func (m *SaveManager) Clear() error {
	err := os.Remove(m.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
