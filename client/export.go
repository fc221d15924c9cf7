package client

import (
	"encoding/json"

	"github.com/lacentralbaja/archivo/internal/api"
	"github.com/lacentralbaja/archivo/internal/domain"
)

// exportPayload is the downloadable backup: the visitor's state plus a
// snapshot of the public board at export time.
type exportPayload struct {
	Project domain.Project         `json:"project"`
	Entries []domain.TimelineEntry `json:"entries"`
	Board   []api.BoardPostView    `json:"board"`
}

// Export serializes the state and board snapshot as indented JSON.
func Export(state State, board []api.BoardPostView) ([]byte, error) {
	if board == nil {
		board = []api.BoardPostView{}
	}
	return json.MarshalIndent(exportPayload{
		Project: state.Project,
		Entries: state.Entries,
		Board:   board,
	}, "", "  ")
}

// Import runs an exported blob through the same merge policy as a normal
// load, persists the result and returns it. Goals still come from the seed:
// a backup must not resurrect stale crowdfunding numbers.
func (s *LocalStore) Import(data []byte, seed domain.SeedDocument) (State, error) {
	var stored storedState
	if err := json.Unmarshal(data, &stored); err != nil {
		return State{}, err
	}

	state, err := merge(seed, stored)
	if err != nil {
		return State{}, err
	}

	if err := s.Save(state); err != nil {
		return State{}, err
	}
	return state, nil
}
