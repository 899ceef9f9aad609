// Package names detects player-name collisions.
//
// Two names collide when they are equal after trimming surrounding
// whitespace and Unicode case folding. The normalized form is only used
// for comparison; callers keep displaying the name as entered.
package names

import (
	"strings"

	"golang.org/x/text/cases"
)

var folder = cases.Fold()

// Normalize trims and case-folds a name
func Normalize(name string) string {
	return folder.String(strings.TrimSpace(name))
}

// DuplicateGroup describes one normalized name used by more than one entry
type DuplicateGroup struct {
	Canonical     string
	Indices       []int
	FirstOriginal string
}

// DuplicateGroups returns one group per normalized name that occurs at two
// or more indices, ordered by first occurrence.
func DuplicateGroups[T any](items []T, nameOf func(T) string) []DuplicateGroup {
	var order []string
	seen := make(map[string]*DuplicateGroup, len(items))

	for idx, item := range items {
		name := nameOf(item)
		key := Normalize(name)
		if g, ok := seen[key]; ok {
			g.Indices = append(g.Indices, idx)
			continue
		}
		seen[key] = &DuplicateGroup{Canonical: key, Indices: []int{idx}, FirstOriginal: name}
		order = append(order, key)
	}

	var groups []DuplicateGroup
	for _, key := range order {
		if g := seen[key]; len(g.Indices) > 1 {
			groups = append(groups, *g)
		}
	}
	return groups
}

// HasDuplicates reports whether any two entries share a normalized name
func HasDuplicates[T any](items []T, nameOf func(T) string) bool {
	return len(DuplicateGroups(items, nameOf)) > 0
}
