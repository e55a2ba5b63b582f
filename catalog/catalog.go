// Package catalog holds the immutable table of first-aid condition records.
// The table is validated once at load and never mutated afterwards, so it can
// be shared by every request without locking.
package catalog

import (
	"errors"
	"fmt"

	"github.com/giygas/afyabuddy-api/entities"
	"github.com/giygas/afyabuddy-api/interfaces"
	"github.com/giygas/afyabuddy-api/validation"
)

// ErrConditionNotFound is returned by Get for unknown identifiers
var ErrConditionNotFound = errors.New("condition not found")

// Compile-time check to ensure Catalog implements ConditionCatalog
var _ interfaces.ConditionCatalog = (*Catalog)(nil)

// Catalog is a read-only registry of condition records in declaration order
type Catalog struct {
	records []entities.ConditionRecord
	index   map[string]int
}

// New validates the records and builds a catalog from deep copies of them
func New(records []entities.ConditionRecord) (*Catalog, error) {
	if err := validation.NewCatalogValidator().ValidateCatalog(records); err != nil {
		return nil, fmt.Errorf("invalid condition catalog: %w", err)
	}

	c := &Catalog{
		records: make([]entities.ConditionRecord, len(records)),
		index:   make(map[string]int, len(records)),
	}
	for i, r := range records {
		c.records[i] = r.Clone()
		c.index[r.ID] = i
	}

	return c, nil
}

// Default returns the built-in catalog
func Default() (*Catalog, error) {
	return New(DefaultRecords())
}

// Get returns a copy of the record for id
func (c *Catalog) Get(id string) (entities.ConditionRecord, error) {
	i, ok := c.index[id]
	if !ok {
		return entities.ConditionRecord{}, fmt.Errorf("%w: %q", ErrConditionNotFound, id)
	}
	return c.records[i].Clone(), nil
}

// Has reports whether id is a known condition
func (c *Catalog) Has(id string) bool {
	_, ok := c.index[id]
	return ok
}

// All returns copies of every record in declaration order
func (c *Catalog) All() []entities.ConditionRecord {
	out := make([]entities.ConditionRecord, len(c.records))
	for i, r := range c.records {
		out[i] = r.Clone()
	}
	return out
}

// IDs returns the identifiers in declaration order
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.records))
	for i, r := range c.records {
		ids[i] = r.ID
	}
	return ids
}

// Summaries returns the listing form of every record
func (c *Catalog) Summaries() []entities.ConditionSummary {
	out := make([]entities.ConditionSummary, len(c.records))
	for i, r := range c.records {
		out[i] = r.Summary()
	}
	return out
}

// Len returns the number of records
func (c *Catalog) Len() int {
	return len(c.records)
}
