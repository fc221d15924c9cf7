package client

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/lacentralbaja/archivo/internal/domain"
	"github.com/lacentralbaja/archivo/internal/logger"
)

// LocalStore persists the visitor's state as a single JSON blob, the same way
// a browser keeps it under one localStorage key.
type LocalStore struct {
	path string
}

func NewLocalStore(path string) *LocalStore {
	return &LocalStore{path: filepath.Clean(path)}
}

// Load merges the stored blob over the seed. A missing or corrupt blob is not
// an error: the visitor simply starts from the seed again.
func (s *LocalStore) Load(seed domain.SeedDocument) State {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Log.Warn("failed to read local state, starting from seed", "path", s.path, "err", err)
		}
		return adoptSeed(seed)
	}

	var stored storedState
	if err := json.Unmarshal(raw, &stored); err != nil {
		logger.Log.Warn("local state is corrupt, starting from seed", "path", s.path, "err", err)
		return adoptSeed(seed)
	}

	state, err := merge(seed, stored)
	if err != nil {
		logger.Log.Warn("failed to merge local state, starting from seed", "path", s.path, "err", err)
		return adoptSeed(seed)
	}
	return state
}

// Save replaces the stored blob with the current state. Goals are stripped
// before writing: they are server-authoritative and the blob must never carry
// a copy that could go stale.
func (s *LocalStore) Save(state State) error {
	projectRaw, err := json.Marshal(state.Project)
	if err != nil {
		return err
	}
	project := map[string]json.RawMessage{}
	if err := json.Unmarshal(projectRaw, &project); err != nil {
		return err
	}
	delete(project, "goals")

	entries := state.Entries
	if entries == nil {
		entries = []domain.TimelineEntry{}
	}

	raw, err := json.Marshal(struct {
		Project map[string]json.RawMessage `json:"project"`
		Entries []domain.TimelineEntry     `json:"entries"`
	}{project, entries})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0600)
}
