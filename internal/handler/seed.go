package handler

import (
	"net/http"
)

// GetSeed serves the server-authoritative baseline: project metadata, funding
// goals and the curated timeline. Clients merge their local state over it,
// except for goals, which are always taken from here.
func (h *Handler) GetSeed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.seed.Get())
}
