// Package catalog holds the fixed in-memory medicine list and its filtered
// lookups. The catalog is seeded once at process start and never mutated,
// so concurrent reads need no locking.
package catalog

import "strings"

// Medicine is one catalog record. Name carries the strength
// (e.g. "Lisinopril 10mg").
type Medicine struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Group       string `json:"group,omitempty"`
	Company     string `json:"company,omitempty"`
	Description string `json:"description,omitempty"`
}

// Entry is the compact shape used by the list and search endpoints.
type Entry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Catalog is a read-only view over the seeded medicine records and the
// published facet label sets.
type Catalog struct {
	medicines []Medicine
	groups    []string
	companies []string
}

// Seed builds the catalog from the built-in medicine list.
func Seed() *Catalog {
	return &Catalog{
		medicines: seedMedicines,
		groups:    publishedGroups,
		companies: publishedCompanies,
	}
}

// All returns every medicine record in catalog order.
func (c *Catalog) All() []Medicine {
	out := make([]Medicine, len(c.medicines))
	copy(out, c.medicines)
	return out
}

// Entries returns the full catalog as compact {id, name} entries.
func (c *Catalog) Entries() []Entry {
	return toEntries(c.medicines)
}

// SearchByName returns every record whose name contains query as a
// case-insensitive substring, preserving catalog order. An empty query
// returns the full catalog.
func (c *Catalog) SearchByName(query string) []Entry {
	if query == "" {
		return c.Entries()
	}
	q := strings.ToLower(query)
	matches := make([]Medicine, 0, len(c.medicines))
	for _, m := range c.medicines {
		if strings.Contains(strings.ToLower(m.Name), q) {
			matches = append(matches, m)
		}
	}
	return toEntries(matches)
}

// FilterByGroup returns every record whose therapeutic group exactly
// equals group. An unrecognized group yields an empty slice, not an error.
func (c *Catalog) FilterByGroup(group string) []Medicine {
	out := []Medicine{}
	for _, m := range c.medicines {
		if m.Group == group {
			out = append(out, m)
		}
	}
	return out
}

// FilterByCompany returns every record whose company exactly equals company.
func (c *Catalog) FilterByCompany(company string) []Medicine {
	out := []Medicine{}
	for _, m := range c.medicines {
		if m.Company == company {
			out = append(out, m)
		}
	}
	return out
}

// Groups returns the published therapeutic group labels. The list is
// hand-maintained and may name groups with no seeded medicines.
func (c *Catalog) Groups() []string {
	out := make([]string, len(c.groups))
	copy(out, c.groups)
	return out
}

// Companies returns the published pharmaceutical company labels.
func (c *Catalog) Companies() []string {
	out := make([]string, len(c.companies))
	copy(out, c.companies)
	return out
}

func toEntries(medicines []Medicine) []Entry {
	entries := make([]Entry, len(medicines))
	for i, m := range medicines {
		entries[i] = Entry{ID: m.ID, Name: m.Name}
	}
	return entries
}
