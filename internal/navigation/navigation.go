// Package navigation resolves menu destinations to paths and decides which
// menu entries are active for the current request.
package navigation

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/overlaygo/internal/menu"
)

// Router is the host's named route lookup.
type Router interface {
	ResolvePath(name string, params ...string) (string, error)
}

// ResolutionError reports a destination the host cannot resolve.
type ResolutionError struct {
	Destination string
	Err         error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolve destination %q: %v", e.Destination, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// Link is the rendered form of a menu entry handed to templates.
type Link struct {
	Label  string `json:"label" yaml:"label"`
	Href   string `json:"href" yaml:"href"`
	Active bool   `json:"active" yaml:"active"`
}

// Resolver implements menu.PathResolver on top of the host router.
type Resolver struct {
	routes Router
}

// NewResolver creates a Resolver backed by routes.
func NewResolver(routes Router) *Resolver {
	return &Resolver{routes: routes}
}

// Resolve maps a symbolic destination to a path.
func (r *Resolver) Resolve(destination string) (string, error) {
	path, err := r.routes.ResolvePath(destination)
	if err != nil {
		return "", &ResolutionError{Destination: destination, Err: err}
	}
	return path, nil
}

// IsActive reports whether e should be highlighted for currentPath.
func (r *Resolver) IsActive(e menu.Entry, currentPath string) bool {
	return IsActive(e, currentPath)
}

// IsActive is the matching rule itself. Exact entries match only their own
// path; prefix entries also match any path below theirs.
func IsActive(e menu.Entry, currentPath string) bool {
	if currentPath == e.Path {
		return true
	}
	if e.Match != menu.MatchPrefix {
		return false
	}
	return strings.HasPrefix(currentPath, e.Path+"/")
}

// Links renders m for a request to currentPath.
func (r *Resolver) Links(m *menu.Model, currentPath string) []Link {
	entries := m.Entries()
	links := make([]Link, 0, len(entries))
	for _, e := range entries {
		links = append(links, Link{
			Label:  e.Label,
			Href:   e.Path,
			Active: IsActive(e, currentPath),
		})
	}
	return links
}
