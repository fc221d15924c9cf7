package client

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/lacentralbaja/archivo/internal/domain"
	"github.com/lacentralbaja/archivo/internal/errors"
)

// EntryForm is a timeline entry as gathered from the add dialog, tags and
// links still in their raw textarea form.
type EntryForm struct {
	Date       string
	Type       string
	Title      string
	Body       string
	Tags       string
	Links      string
	Archived   bool
	Importance string
}

// AddEntry validates the form, fills defaults and appends the entry to the
// state. Date and title are the only required fields.
func (st *State) AddEntry(form EntryForm) (domain.TimelineEntry, error) {
	title := strings.TrimSpace(form.Title)
	if form.Date == "" || title == "" {
		return domain.TimelineEntry{}, &errors.ErrorWithStatusCode{Message: "Fecha y título son obligatorios", StatusCode: 400}
	}

	entryType := domain.EntryType(form.Type)
	if !entryType.Valid() {
		entryType = domain.EntryUpdate
	}

	importance := form.Importance
	if importance == "" {
		importance = "normal"
	}

	entry := domain.TimelineEntry{
		Id:         "e-" + uuid.NewString(),
		Date:       form.Date,
		Type:       entryType,
		Title:      title,
		Body:       strings.TrimSpace(form.Body),
		Tags:       domain.NormalizeTags(form.Tags),
		Links:      domain.NormalizeLinks(form.Links),
		Archived:   form.Archived,
		Importance: importance,
	}

	st.Entries = append(st.Entries, entry)
	return entry, nil
}

// ToggleArchived flips the archived flag; archived entries stay in the state
// and only disappear from the default view.
func (st *State) ToggleArchived(id string) bool {
	for i := range st.Entries {
		if st.Entries[i].Id == id {
			st.Entries[i].Archived = !st.Entries[i].Archived
			return true
		}
	}
	return false
}

// DeleteEntry removes the entry for good; there is no undo short of a prior
// export.
func (st *State) DeleteEntry(id string) bool {
	for i := range st.Entries {
		if st.Entries[i].Id == id {
			st.Entries = append(st.Entries[:i], st.Entries[i+1:]...)
			return true
		}
	}
	return false
}

// SortEntries orders newest first; same-day entries fall back to importance,
// compared as strings the way the page always has.
func SortEntries(entries []domain.TimelineEntry) []domain.TimelineEntry {
	sorted := append([]domain.TimelineEntry{}, entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		di, dj := sorted[i].Date, sorted[j].Date
		if di == "" {
			di = "0000-00-00"
		}
		if dj == "" {
			dj = "0000-00-00"
		}
		if di != dj {
			return di > dj
		}
		return sorted[i].Importance > sorted[j].Importance
	})
	return sorted
}

// Filter narrows the timeline view.
type Filter struct {
	Type         string // entry type, or "all"
	Query        string
	ShowArchived bool
}

func (f Filter) matches(e domain.TimelineEntry) bool {
	if !f.ShowArchived && e.Archived {
		return false
	}
	if f.Type != "" && f.Type != "all" && string(e.Type) != f.Type {
		return false
	}

	q := strings.ToLower(strings.TrimSpace(f.Query))
	if q == "" {
		return true
	}

	hay := strings.ToLower(strings.Join([]string{
		e.Title,
		e.Body,
		strings.Join(e.Tags, " "),
		strings.Join(e.Links, " "),
	}, " "))
	return strings.Contains(hay, q)
}

// FilterEntries returns the entries matching the filter, order preserved.
func FilterEntries(entries []domain.TimelineEntry, f Filter) []domain.TimelineEntry {
	matched := []domain.TimelineEntry{}
	for _, e := range entries {
		if f.matches(e) {
			matched = append(matched, e)
		}
	}
	return matched
}
