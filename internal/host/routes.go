package host

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/specialistvlad/overlaygo/internal/extension"
)

// Route is a named URL pattern. Patterns use chi syntax, e.g. "/pages/{id}".
type Route struct {
	Name    string `json:"name" yaml:"name"`
	Pattern string `json:"pattern" yaml:"pattern"`
}

// Expand fills the {placeholders} of the pattern with params, in order.
func (r Route) Expand(params ...string) (string, error) {
	segments := strings.Split(r.Pattern, "/")
	next := 0
	for i, seg := range segments {
		if !strings.HasPrefix(seg, "{") || !strings.HasSuffix(seg, "}") {
			continue
		}
		if next >= len(params) {
			return "", fmt.Errorf("route %q: %w %s", r.Name, ErrMissingParam, seg)
		}
		segments[i] = params[next]
		next++
	}
	return strings.Join(segments, "/"), nil
}

// OmniauthRouteName is the name of the sign-in route drawn for provider.
func OmniauthRouteName(provider string) string {
	return "user_" + provider + "_omniauth_authorize"
}

// routeTable is the immutable result of drawing routes for one cycle.
type routeTable struct {
	routes []Route
	byName map[string]Route
	router http.Handler
}

func (t *routeTable) lookup(name string) (Route, bool) {
	if t == nil {
		return Route{}, false
	}
	r, ok := t.byName[name]
	return r, ok
}

// drawRoutes builds the route table from the static routes plus the
// routes derived from the classes of this cycle.
func (p *Platform) drawRoutes(classes *classSet) (*routeTable, error) {
	routes := append([]Route(nil), p.routes...)
	if user, ok := classes.get(UserClass); ok {
		for _, ap := range Extensions[extension.AuthProviders](user) {
			for _, provider := range ap.OmniauthProviders() {
				routes = append(routes, Route{
					Name:    OmniauthRouteName(provider),
					Pattern: "/users/auth/" + provider,
				})
			}
		}
	}

	t := &routeTable{byName: make(map[string]Route, len(routes))}
	for _, r := range routes {
		if _, dup := t.byName[r.Name]; dup {
			continue
		}
		t.byName[r.Name] = r
		t.routes = append(t.routes, r)
	}

	seen := make(map[string]bool, len(t.routes))
	for _, r := range t.routes {
		if seen[r.Pattern] {
			return nil, fmt.Errorf("route %q: pattern %q drawn twice", r.Name, r.Pattern)
		}
		seen[r.Pattern] = true
	}
	return t, nil
}

// mountRouter builds the router of t. Page handlers are wrapped by the
// middleware attached to classes, so it runs once the cycle has attached
// everything, after Prepare.
func (p *Platform) mountRouter(t *routeTable, classes *classSet) {
	mux := chi.NewRouter()
	mux.Get("/_extensions", p.handleExtensions)
	for _, m := range p.mounts {
		mux.Handle(m.pattern, m.handler)
	}

	chain := p.middlewares(classes)
	for _, r := range t.routes {
		var h http.Handler = p.page(r)
		for i := len(chain) - 1; i >= 0; i-- {
			h = chain[i].Wrap(h)
		}
		mux.Method(http.MethodGet, r.Pattern, h)
	}
	t.router = mux
}
