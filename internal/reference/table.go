// Package reference provides the curated catalog of tracked health-relevant
// variants. The catalog is read-only, seeded at process start, and safe for
// concurrent readers because nothing mutates it after construction.
package reference

import "github.com/dna-health-analyzer/internal/domain"

// Table is the identifier-indexed view over the curated catalog. It exposes
// O(1) lookup by rsid plus the full ordered identifier list for batch
// operations; callers iterate the table rather than hard-coding rsids, since
// the catalog grows over releases.
type Table struct {
	variants map[string]domain.ReferenceVariant
	order    []string
}

// NewTable builds the table from the shipped curated catalog.
func NewTable() *Table {
	return newTable(curatedCatalog)
}

// newTable indexes any catalog slice; split out so tests can seed their own
// entries.
func newTable(catalog []domain.ReferenceVariant) *Table {
	t := &Table{
		variants: make(map[string]domain.ReferenceVariant, len(catalog)),
		order:    make([]string, 0, len(catalog)),
	}
	for _, v := range catalog {
		if _, dup := t.variants[v.RSID]; !dup {
			t.order = append(t.order, v.RSID)
		}
		t.variants[v.RSID] = v
	}
	return t
}

// Lookup returns the catalog entry for rsid, if tracked.
func (t *Table) Lookup(rsid string) (domain.ReferenceVariant, bool) {
	v, ok := t.variants[rsid]
	return v, ok
}

// RSIDs returns the tracked identifiers in catalog order. The slice is a
// copy; callers may reorder it freely.
func (t *Table) RSIDs() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Len returns the number of tracked variants.
func (t *Table) Len() int {
	return len(t.order)
}
