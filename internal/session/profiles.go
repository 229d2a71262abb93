package session

import (
	"fmt"
	"os"
	"path/filepath"
)

// ProfileManager bridges configuration settings with local file
// organization. Each profile directory holds one save snapshot and one
// session transcript, independent of the storage mechanisms themselves.
type ProfileManager struct {
	RootDir string
}

// NewProfileManager returns a manager localized to the configured
// profiles directory.
func NewProfileManager(rootDir string) *ProfileManager {
	return &ProfileManager{RootDir: rootDir}
}

// ProfilePath produces the safe joined directory path for a profile.
func (p *ProfileManager) ProfilePath(name string) string {
	return filepath.Join(p.RootDir, name)
}

// SavePath returns the path to a profile's snapshot file.
func (p *ProfileManager) SavePath(name string) string {
	return filepath.Join(p.ProfilePath(name), "save.json")
}

// LogPath returns the path to a profile's transcript file.
func (p *ProfileManager) LogPath(name string) string {
	return filepath.Join(p.ProfilePath(name), "transcript.jsonl")
}

// Create generates the standard directory structure for a profile.
func (p *ProfileManager) Create(name string) error {
	if err := os.MkdirAll(p.ProfilePath(name), 0755); err != nil {
		return fmt.Errorf("failed to create profile directory: %w", err)
	}
	return nil
}

// Exists reports whether a profile directory is present.
func (p *ProfileManager) Exists(name string) bool {
	stat, err := os.Stat(p.ProfilePath(name))
	return err == nil && stat.IsDir()
}

// List names every profile under the root directory.
func (p *ProfileManager) List() ([]string, error) {
	entries, err := os.ReadDir(p.RootDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read profiles directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// Delete removes a profile and everything in it.
func (p *ProfileManager) Delete(name string) error {
	if !p.Exists(name) {
		return fmt.Errorf("no such profile: %s", name)
	}
	return os.RemoveAll(p.ProfilePath(name))
}
