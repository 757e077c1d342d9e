// Package deviseoverrides wraps the base controller with debug logging of
// session requests (sign in and sign out).
package deviseoverrides

import (
	"net/http"

	"github.com/specialistvlad/overlaygo/internal/ctxlog"
	"github.com/specialistvlad/overlaygo/internal/host"
	"github.com/specialistvlad/overlaygo/internal/lifecycle"
	"github.com/specialistvlad/overlaygo/internal/navigation"
	"github.com/specialistvlad/overlaygo/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct {
	Paths navigation.Router
}

// Capability is the session request middleware.
type Capability struct {
	paths navigation.Router
}

func (c *Capability) Name() string { return "devise_overrides" }

// RouteNames lists the session routes the middleware watches.
func (c *Capability) RouteNames() []string {
	return []string{host.RouteSignIn, host.RouteSignOut}
}

// Wrap logs requests to the session routes. Other requests pass through.
func (c *Capability) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if route, ok := c.sessionRoute(r.URL.Path); ok {
			ctxlog.FromContext(r.Context()).Debug("Session request.",
				"route", route,
				"method", r.Method,
				"path", r.URL.Path,
				"remote_addr", r.RemoteAddr,
			)
		}
		next.ServeHTTP(w, r)
	})
}

func (c *Capability) sessionRoute(path string) (string, bool) {
	if c.paths == nil {
		return "", false
	}
	for _, name := range c.RouteNames() {
		if p, err := c.paths.ResolvePath(name); err == nil && p == path {
			return name, true
		}
	}
	return "", false
}

// Register binds the middleware to the base controller when routes load.
func (m *Module) Register(r *registry.Registry) error {
	return r.Bind(host.ControllerBase, &Capability{paths: m.Paths}, lifecycle.StageRouteLoad)
}
