package search

import (
	"deckle/internal/domain"
)

// Entry is one searchable record. Entries are built once per document load
// and treated as immutable for the session. ID is a lookup association back
// into the live fragment list, re-resolved whenever a result is activated.
type Entry struct {
	ID      string
	Type    domain.FragmentType
	Title   string
	Content string
}

// Build scans the fragment list once and produces the search index. Only
// speaker and concept fragments are indexed; sections are navigation
// targets, not search records. Missing text fields come through as empty
// strings rather than being skipped.
func Build(fragments []domain.Fragment) []Entry {
	var index []Entry
	for _, f := range fragments {
		switch f.Type {
		case domain.FragmentSpeaker, domain.FragmentConcept:
			index = append(index, Entry{
				ID:      f.ID,
				Type:    f.Type,
				Title:   f.Title,
				Content: f.Body,
			})
		}
	}
	return index
}
