package service

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lacentralbaja/archivo/internal/domain"
)

type SeedService interface {
	Get() domain.SeedDocument
}

// Seed serves the server-authoritative baseline loaded once at startup. The
// file is the operator's handle for keeping funding goals current: edit,
// restart, every client picks the new goals up on next load.
type Seed struct {
	doc domain.SeedDocument
}

func LoadSeed(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}

	var doc domain.SeedDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("seed file %s is not valid json: %w", path, err)
	}
	if doc.Entries == nil {
		doc.Entries = []domain.TimelineEntry{}
	}

	return &Seed{doc: doc}, nil
}

// Get returns a copy so handlers and clients can never mutate the baseline
// through an aliased slice or map.
func (s *Seed) Get() domain.SeedDocument {
	doc := s.doc

	doc.Entries = make([]domain.TimelineEntry, len(s.doc.Entries))
	copy(doc.Entries, s.doc.Entries)
	for i, e := range doc.Entries {
		doc.Entries[i].Tags = append([]string(nil), e.Tags...)
		doc.Entries[i].Links = append([]string(nil), e.Links...)
	}

	doc.Project.Description = append([]string(nil), s.doc.Project.Description...)
	if s.doc.Project.Links != nil {
		doc.Project.Links = make(map[string]string, len(s.doc.Project.Links))
		for k, v := range s.doc.Project.Links {
			doc.Project.Links[k] = v
		}
	}

	return doc
}
