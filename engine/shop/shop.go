// Package shop holds the static purchase catalog.
package shop

import (
	"fmt"

	"github.com/nathoo/ecohero/types"
)

// Catalog is an ordered, read-only list of purchasable entries.
type Catalog struct {
	entries []types.CatalogEntry
	byKind  map[types.ItemKind]int
}

// New builds a catalog from entries, preserving their order.
func New(entries []types.CatalogEntry) Catalog {
	c := Catalog{
		entries: make([]types.CatalogEntry, len(entries)),
		byKind:  make(map[types.ItemKind]int, len(entries)),
	}
	copy(c.entries, entries)
	for i, e := range c.entries {
		if _, dup := c.byKind[e.Kind]; !dup {
			c.byKind[e.Kind] = i
		}
	}
	return c
}

// Entries returns a copy of the catalog entries in display order.
func (c Catalog) Entries() []types.CatalogEntry {
	out := make([]types.CatalogEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of entries.
func (c Catalog) Len() int {
	return len(c.entries)
}

// Lookup returns the entry for an item kind.
func (c Catalog) Lookup(kind types.ItemKind) (types.CatalogEntry, bool) {
	i, ok := c.byKind[kind]
	if !ok {
		return types.CatalogEntry{}, false
	}
	return c.entries[i], true
}

// Categories returns category names in first-seen order.
func (c Catalog) Categories() []string {
	var cats []string
	seen := map[string]bool{}
	for _, e := range c.entries {
		if !seen[e.Category] {
			seen[e.Category] = true
			cats = append(cats, e.Category)
		}
	}
	return cats
}

// InCategory returns the entries of one category in display order.
func (c Catalog) InCategory(category string) []types.CatalogEntry {
	var out []types.CatalogEntry
	for _, e := range c.entries {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

// Validate reports every structural problem with the catalog.
func (c Catalog) Validate() []string {
	var problems []string
	seen := map[types.ItemKind]bool{}
	for _, e := range c.entries {
		if e.Kind == "" {
			problems = append(problems, "catalog entry with empty kind")
			continue
		}
		if seen[e.Kind] {
			problems = append(problems, fmt.Sprintf("item %q defined more than once", e.Kind))
		}
		seen[e.Kind] = true
		if e.Cost < 0 {
			problems = append(problems, fmt.Sprintf("item %q has negative cost %d", e.Kind, e.Cost))
		}
		switch e.Effect.Kind {
		case types.EffectHeal, types.EffectDamage, types.EffectAttackBoost:
			if e.Effect.Amount <= 0 {
				problems = append(problems, fmt.Sprintf("item %q effect %s needs a positive amount", e.Kind, e.Effect.Kind))
			}
		default:
			problems = append(problems, fmt.Sprintf("item %q has unknown effect %q", e.Kind, e.Effect.Kind))
		}
	}
	return problems
}
