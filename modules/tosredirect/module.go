// Package tosredirect keeps the page a visitor asked for when they are sent
// to accept the terms of service first, so they can be returned to it
// afterwards.
package tosredirect

import (
	"net/http"
	"net/url"

	"github.com/felixge/httpsnoop"
	"github.com/specialistvlad/overlaygo/internal/host"
	"github.com/specialistvlad/overlaygo/internal/lifecycle"
	"github.com/specialistvlad/overlaygo/internal/navigation"
	"github.com/specialistvlad/overlaygo/internal/registry"
)

// RedirectParam carries the originally requested path.
const RedirectParam = "redirect_url"

// Module implements the registry.Module interface for this package.
type Module struct {
	Paths navigation.Router
}

// Capability is the terms of service redirect middleware.
type Capability struct {
	paths navigation.Router
}

func (c *Capability) Name() string { return "tos_redirect_fix" }

func (c *Capability) RouteNames() []string { return []string{host.RouteTermsOfUse} }

// Wrap adds the requested path to redirects that lead to the terms page.
func (c *Capability) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c.paths == nil || r.Method != http.MethodGet {
			next.ServeHTTP(w, r)
			return
		}
		terms, err := c.paths.ResolvePath(host.RouteTermsOfUse)
		if err != nil || r.URL.Path == terms {
			next.ServeHTTP(w, r)
			return
		}

		original := r.URL.RequestURI()
		hooked := httpsnoop.Wrap(w, httpsnoop.Hooks{
			WriteHeader: func(write httpsnoop.WriteHeaderFunc) httpsnoop.WriteHeaderFunc {
				return func(code int) {
					if code >= 300 && code < 400 {
						keepOriginal(w.Header(), terms, original)
					}
					write(code)
				}
			},
		})
		next.ServeHTTP(hooked, r)
	})
}

func keepOriginal(h http.Header, terms, original string) {
	loc, err := url.Parse(h.Get("Location"))
	if err != nil || loc.Path != terms {
		return
	}
	q := loc.Query()
	if q.Get(RedirectParam) != "" {
		return
	}
	q.Set(RedirectParam, original)
	loc.RawQuery = q.Encode()
	h.Set("Location", loc.String())
}

// Register binds the middleware to the terms of service concern.
func (m *Module) Register(r *registry.Registry) error {
	return r.Bind(host.NeedsTosAccepted, &Capability{paths: m.Paths}, lifecycle.StagePrepare)
}
