package menu

import (
	"fmt"
	"strings"
)

// Match is the policy deciding whether an entry is active for a request path.
type Match int

const (
	// MatchExact is active only on the entry's own path (a home link).
	MatchExact Match = iota
	// MatchPrefix is active on the entry's path and everything below it (a section link).
	MatchPrefix
)

func (m Match) String() string {
	switch m {
	case MatchExact:
		return "exact"
	case MatchPrefix:
		return "prefix"
	default:
		return fmt.Sprintf("match(%d)", int(m))
	}
}

// ParseMatch accepts "exact", and "prefix" or its alias "inclusive".
func ParseMatch(raw string) (Match, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "exact":
		return MatchExact, nil
	case "prefix", "inclusive":
		return MatchPrefix, nil
	default:
		return 0, fmt.Errorf("unknown active match %q", raw)
	}
}

// Text references a localized string.
type Text struct {
	Key   string
	Scope string
}

// Item describes one menu entry before it is built.
type Item struct {
	Label       Text
	Destination string // symbolic route name
	Position    int
	Match       Match
}

// Entry is one built menu entry: label translated, destination resolved.
type Entry struct {
	Label       string
	Destination string
	Path        string
	Position    int
	Match       Match
}

// Model is an immutable, ordered menu snapshot.
type Model struct {
	entries []Entry
}

// NewModel copies entries into a model without reordering them.
func NewModel(entries []Entry) *Model {
	return &Model{entries: append([]Entry(nil), entries...)}
}

// Entries returns a copy of the entries in render order.
func (m *Model) Entries() []Entry {
	if m == nil {
		return nil
	}
	return append([]Entry(nil), m.entries...)
}

// Len returns the number of entries.
func (m *Model) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}
