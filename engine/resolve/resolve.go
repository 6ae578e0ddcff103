// Package resolve maps names from parsed intents to roster indices and catalog items.
package resolve

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nathoo/ecohero/engine/errs"
	"github.com/nathoo/ecohero/types"
)

// AmbiguityError indicates multiple candidates matched a name.
type AmbiguityError struct {
	Name       string
	Candidates []string
}

func (e *AmbiguityError) Error() string {
	names := strings.Join(e.Candidates, ", ")
	return fmt.Sprintf("which %s? (%s)", e.Name, names)
}

// Unwrap lets errors.Is match errs.ErrInvalidTarget.
func (e *AmbiguityError) Unwrap() error { return errs.ErrInvalidTarget }

// NotFoundError indicates no candidate matched a name.
type NotFoundError struct {
	What string
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("there is no %s called %q", e.What, e.Name)
}

// Unwrap lets errors.Is match errs.ErrInvalidTarget.
func (e *NotFoundError) Unwrap() error { return errs.ErrInvalidTarget }

// Adversary resolves a 1-based index or a name to a roster index.
func Adversary(roster []types.AdversaryView, name string) (int, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, &NotFoundError{What: "adversary", Name: name}
	}
	if n, err := strconv.Atoi(name); err == nil {
		if n < 1 || n > len(roster) {
			return 0, errs.InvalidTarget(n, len(roster))
		}
		return n, nil
	}

	nameLower := strings.ToLower(name)
	var matches []types.AdversaryView
	for _, a := range roster {
		if matchesName(a.ID, a.Name, nameLower) {
			matches = append(matches, a)
		}
	}

	switch len(matches) {
	case 0:
		return 0, &NotFoundError{What: "adversary", Name: name}
	case 1:
		return matches[0].Index, nil
	default:
		// An exact name beats partial matches.
		for _, m := range matches {
			if strings.ToLower(m.Name) == nameLower || m.ID == nameLower {
				return m.Index, nil
			}
		}
		names := make([]string, 0, len(matches))
		for _, m := range matches {
			names = append(names, m.Name)
		}
		return 0, &AmbiguityError{Name: name, Candidates: names}
	}
}

// Item resolves a kind or display name to a catalog item kind.
func Item(entries []types.CatalogEntry, name string) (types.ItemKind, error) {
	nameLower := strings.ToLower(strings.TrimSpace(name))
	if nameLower == "" {
		return "", &NotFoundError{What: "item", Name: name}
	}

	var matches []types.CatalogEntry
	for _, e := range entries {
		if strings.ToLower(string(e.Kind)) == nameLower || strings.ToLower(e.Name) == nameLower {
			return e.Kind, nil
		}
		if matchesName(string(e.Kind), e.Name, nameLower) {
			matches = append(matches, e)
		}
	}

	switch len(matches) {
	case 0:
		return "", &NotFoundError{What: "item", Name: name}
	case 1:
		return matches[0].Kind, nil
	default:
		kinds := make([]string, 0, len(matches))
		for _, m := range matches {
			kinds = append(kinds, string(m.Kind))
		}
		return "", &AmbiguityError{Name: name, Candidates: kinds}
	}
}

// matchesName checks if a display name or ID matches the query (case-insensitive).
// Supports exact match, word-based partial match, and ID match.
func matchesName(id, display, nameLower string) bool {
	displayLower := strings.ToLower(display)
	if displayLower == nameLower {
		return true
	}
	// Word-based partial match: "kraken" matches "Plastic Kraken".
	for _, word := range strings.Fields(displayLower) {
		if word == nameLower {
			return true
		}
	}
	idLower := strings.ToLower(id)
	if idLower == nameLower {
		return true
	}
	// Underscore normalization: "super sword" matches "super_sword".
	if strings.ReplaceAll(nameLower, " ", "_") == idLower {
		return true
	}
	for _, word := range strings.Split(idLower, "_") {
		if word == nameLower {
			return true
		}
	}
	return false
}
