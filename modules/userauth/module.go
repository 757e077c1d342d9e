// Package userauth adds the site's external sign-in providers to the user
// model.
//
// The host resets the user model's providers whenever models are reloaded
// and draws the sign-in routes from whatever providers are attached at that
// moment. The capability is therefore bound to ModelLoad and again to
// ClassUnload, so it is in place before routes are drawn on every cycle.
package userauth

import (
	"github.com/specialistvlad/overlaygo/internal/config"
	"github.com/specialistvlad/overlaygo/internal/host"
	"github.com/specialistvlad/overlaygo/internal/lifecycle"
	"github.com/specialistvlad/overlaygo/internal/registry"
)

// Provider names.
const (
	Tunnistamo = "tunnistamo"
	Suomifi    = "suomifi"
	MPASSid    = "mpassid"
)

// Module implements the registry.Module interface for this package.
type Module struct {
	Site *config.Current
}

// Capability lists the providers enabled by the live site configuration.
type Capability struct {
	site *config.Current
}

func (c *Capability) Name() string { return "user_authentication" }

// OmniauthProviders returns tunnistamo plus every provider the site enables.
// The routes are drawn from it during a cycle, so a reload reads the site
// configuration it is about to publish.
func (c *Capability) OmniauthProviders() []string {
	site := config.Default()
	if c.site != nil {
		site = c.site.Next()
	}
	providers := []string{Tunnistamo}
	if site.SuomifiEnabled {
		providers = append(providers, Suomifi)
	}
	if site.MpassidEnabled {
		providers = append(providers, MPASSid)
	}
	return providers
}

// Register binds the capability to the user model.
func (m *Module) Register(r *registry.Registry) error {
	return r.Bind(host.UserClass, &Capability{site: m.Site}, lifecycle.StageModelLoad, lifecycle.StageClassUnload)
}
