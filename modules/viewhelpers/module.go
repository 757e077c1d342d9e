// Package viewhelpers adds the map and widget URL helpers to every view.
package viewhelpers

import (
	"strings"

	"github.com/specialistvlad/overlaygo/internal/config"
	"github.com/specialistvlad/overlaygo/internal/host"
	"github.com/specialistvlad/overlaygo/internal/lifecycle"
	"github.com/specialistvlad/overlaygo/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct {
	Site *config.Current
}

// MapHelper builds addresses for the geocoder.
type MapHelper struct {
	site *config.Current
}

func (h *MapHelper) Name() string { return "map_helper" }

func (h *MapHelper) Helpers() map[string]any {
	return map[string]any{"geocoding_address": h.GeocodingAddress}
}

// GeocodingAddress appends the site address suffix to address, keeping
// lookups inside the site's area. An address that already ends with the
// suffix is returned as is.
func (h *MapHelper) GeocodingAddress(address string) string {
	address = strings.TrimSpace(address)
	if h.site == nil || address == "" {
		return address
	}
	suffix := h.site.Load().AddressSuffix
	if suffix == "" || strings.HasSuffix(strings.ToLower(address), strings.ToLower(suffix)) {
		return address
	}
	return address + ", " + suffix
}

// WidgetURLsHelper builds embeddable widget URLs.
type WidgetURLsHelper struct{}

func (WidgetURLsHelper) Name() string { return "widget_urls_helper" }

func (WidgetURLsHelper) Helpers() map[string]any {
	return map[string]any{"widget_url": WidgetURL}
}

// WidgetURL returns the embed script URL of the resource at resourceURL.
func WidgetURL(resourceURL string) string {
	base, query, hasQuery := strings.Cut(resourceURL, "?")
	u := strings.TrimRight(base, "/") + "/embed.js"
	if hasQuery {
		u += "?" + query
	}
	return u
}

// Register binds both helpers to the base view on every prepare.
func (m *Module) Register(r *registry.Registry) error {
	if err := r.Bind(host.ViewBase, &MapHelper{site: m.Site}, lifecycle.StagePrepare); err != nil {
		return err
	}
	return r.Bind(host.ViewBase, WidgetURLsHelper{}, lifecycle.StagePrepare)
}
