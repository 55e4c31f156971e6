package keepups

import (
	"sort"
	"strings"
)

// Table maps a player name to the best score recorded under it.
type Table map[string]int

// Entry is one row of a sorted high-score list.
type Entry struct {
	Name  string
	Score int
}

// NormalizeName trims surrounding whitespace and keeps at most maxLen
// characters. It returns false when nothing is left to record.
func NormalizeName(raw string, maxLen int) (string, bool) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", false
	}

	runes := []rune(name)
	if maxLen > 0 && len(runes) > maxLen {
		name = string(runes[:maxLen])
	}
	return name, true
}

// Record keeps the higher of the stored and given score for name.
// It reports whether the table changed.
func (t Table) Record(name string, score int) bool {
	if existing, ok := t[name]; ok && existing >= score {
		return false
	}
	t[name] = score
	return true
}

// Best returns the recorded score for name, 0 if none.
func (t Table) Best(name string) int {
	return t[name]
}

// Clone returns an independent copy of the table.
func (t Table) Clone() Table {
	c := make(Table, len(t))
	for name, score := range t {
		c[name] = score
	}
	return c
}

// Sorted lists the table by score, highest first. Equal scores are ordered by name.
func (t Table) Sorted() []Entry {
	entries := make([]Entry, 0, len(t))
	for name, score := range t {
		entries = append(entries, Entry{Name: name, Score: score})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Name < entries[j].Name
	})

	return entries
}
