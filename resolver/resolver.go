// Package resolver classifies free text into a canonical condition identifier
// by case-insensitive substring matching over an ordered synonym table.
package resolver

import (
	"fmt"
	"strings"

	"github.com/giygas/afyabuddy-api/entities"
	"github.com/giygas/afyabuddy-api/interfaces"
	"github.com/giygas/afyabuddy-api/validation"
)

// Compile-time check to ensure Resolver implements KeywordResolver
var _ interfaces.KeywordResolver = (*Resolver)(nil)

// Resolver holds a validated, immutable copy of a synonym table
type Resolver struct {
	entries []entities.SynonymEntry
}

// New builds a resolver after checking every entry references a condition
// known to the catalog.
func New(entries []entities.SynonymEntry, catalog interfaces.ConditionCatalog) (*Resolver, error) {
	if catalog == nil {
		return nil, fmt.Errorf("resolver requires a condition catalog")
	}

	if err := validation.NewCatalogValidator().ValidateSynonyms(entries, catalog.Has); err != nil {
		return nil, fmt.Errorf("invalid synonym table: %w", err)
	}

	copied := make([]entities.SynonymEntry, len(entries))
	copy(copied, entries)

	return &Resolver{entries: copied}, nil
}

// Resolve returns the condition of the first phrase, in declaration order,
// that occurs in text. Blank text never matches.
func (r *Resolver) Resolve(text string) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return "", false
	}

	lowered := strings.ToLower(text)
	for _, entry := range r.entries {
		if strings.Contains(lowered, entry.Phrase) {
			return entry.ConditionID, true
		}
	}

	return "", false
}

// Entries returns a copy of the synonym table in declaration order
func (r *Resolver) Entries() []entities.SynonymEntry {
	out := make([]entities.SynonymEntry, len(r.entries))
	copy(out, r.entries)
	return out
}
