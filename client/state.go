package client

import (
	"encoding/json"

	"github.com/lacentralbaja/archivo/internal/domain"
)

// State is what the visitor actually sees: project metadata merged from the
// seed and their own overrides, plus their personal timeline.
type State struct {
	Project domain.Project         `json:"project"`
	Entries []domain.TimelineEntry `json:"entries"`
}

// storedState is the on-disk shape. Project stays raw so a partial blob
// (only the keys the visitor changed) keeps its key-presence semantics
// through a merge; Entries is a pointer so "absent" and "empty list" stay
// distinguishable.
type storedState struct {
	Project json.RawMessage         `json:"project"`
	Entries *[]domain.TimelineEntry `json:"entries"`
}

// merge applies the policy: local entries are authoritative when present,
// local project keys shallow-overlay the seed project, and goals ALWAYS come
// from the seed so the crowdfunding bar never shows stale numbers.
func merge(seed domain.SeedDocument, local storedState) (State, error) {
	project, err := mergeProject(seed.Project, local.Project)
	if err != nil {
		return State{}, err
	}

	var entries []domain.TimelineEntry
	if local.Entries != nil {
		entries = append([]domain.TimelineEntry{}, *local.Entries...)
	} else {
		entries = append([]domain.TimelineEntry{}, seed.Entries...)
	}

	return State{Project: project, Entries: entries}, nil
}

// mergeProject overlays only the keys the local blob actually carries, then
// forces goals back to the seed's.
func mergeProject(seed domain.Project, local json.RawMessage) (domain.Project, error) {
	seedRaw, err := json.Marshal(seed)
	if err != nil {
		return domain.Project{}, err
	}

	base := map[string]json.RawMessage{}
	if err := json.Unmarshal(seedRaw, &base); err != nil {
		return domain.Project{}, err
	}

	if len(local) > 0 {
		overlay := map[string]json.RawMessage{}
		if err := json.Unmarshal(local, &overlay); err != nil {
			return domain.Project{}, err
		}
		for k, v := range overlay {
			base[k] = v
		}
	}

	goals, err := json.Marshal(seed.Goals)
	if err != nil {
		return domain.Project{}, err
	}
	base["goals"] = goals

	mergedRaw, err := json.Marshal(base)
	if err != nil {
		return domain.Project{}, err
	}

	var merged domain.Project
	if err := json.Unmarshal(mergedRaw, &merged); err != nil {
		return domain.Project{}, err
	}
	return merged, nil
}

// adoptSeed is the fresh-visitor (and corrupt-store) state: the seed as-is.
func adoptSeed(seed domain.SeedDocument) State {
	return State{
		Project: seed.Project,
		Entries: append([]domain.TimelineEntry{}, seed.Entries...),
	}
}
