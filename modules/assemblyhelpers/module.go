// Package assemblyhelpers gives the highlighted assemblies content block the
// application and sanitize helpers that the rest of the views already have.
package assemblyhelpers

import (
	"github.com/specialistvlad/overlaygo/internal/host"
	"github.com/specialistvlad/overlaygo/internal/lifecycle"
	"github.com/specialistvlad/overlaygo/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// ApplicationHelper holds general text helpers.
type ApplicationHelper struct{}

func (ApplicationHelper) Name() string { return "application_helper" }

func (ApplicationHelper) Helpers() map[string]any {
	return map[string]any{"html_truncate": Truncate}
}

// SanitizeHelper holds the user content sanitizer.
type SanitizeHelper struct{}

func (SanitizeHelper) Name() string { return "sanitize_helper" }

func (SanitizeHelper) Helpers() map[string]any {
	return map[string]any{"decidim_sanitize": Sanitize}
}

// Register binds both helpers to the content block on every prepare.
func (m *Module) Register(r *registry.Registry) error {
	if err := r.Bind(host.HighlightedAssembliesCell, ApplicationHelper{}, lifecycle.StagePrepare); err != nil {
		return err
	}
	return r.Bind(host.HighlightedAssembliesCell, SanitizeHelper{}, lifecycle.StagePrepare)
}
