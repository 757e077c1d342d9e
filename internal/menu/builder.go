package menu

import (
	"cmp"
	"context"
	"slices"

	"github.com/specialistvlad/overlaygo/internal/ctxlog"
)

// Translator looks up a localized string.
type Translator interface {
	Translate(key, scope string) string
}

// PathResolver maps a symbolic destination to a concrete path.
type PathResolver interface {
	Resolve(destination string) (string, error)
}

// Builder turns menu items into a Model. It holds no state between
// builds other than its two collaborators.
type Builder struct {
	text  Translator
	paths PathResolver
}

// NewBuilder creates a Builder that translates labels with text and resolves
// destinations with paths.
func NewBuilder(text Translator, paths PathResolver) *Builder {
	return &Builder{text: text, paths: paths}
}

// Build sorts items by position, stable on ties, and returns a new Model.
// An item whose destination cannot be resolved is dropped and logged; one
// broken entry never fails the whole menu.
func (b *Builder) Build(ctx context.Context, items []Item) *Model {
	logger := ctxlog.FromContext(ctx)

	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(x, y Item) int {
		return cmp.Compare(x.Position, y.Position)
	})

	entries := make([]Entry, 0, len(sorted))
	for _, item := range sorted {
		path, err := b.paths.Resolve(item.Destination)
		if err != nil {
			logger.Warn("Menu item dropped, destination could not be resolved.", "destination", item.Destination, "position", item.Position, "error", err)
			continue
		}
		entries = append(entries, Entry{
			Label:       b.text.Translate(item.Label.Key, item.Label.Scope),
			Destination: item.Destination,
			Path:        path,
			Position:    item.Position,
			Match:       item.Match,
		})
	}

	logger.Debug("Menu built.", "items", len(items), "entries", len(entries))
	return &Model{entries: entries}
}
