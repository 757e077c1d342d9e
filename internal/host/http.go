package host

import (
	"encoding/json"
	"net/http"
	"reflect"

	"github.com/go-chi/chi/v5"
)

// ClassInfo describes one loaded class for diagnostics.
type ClassInfo struct {
	Name         string   `json:"name" yaml:"name"`
	Generation   uint64   `json:"generation" yaml:"generation"`
	Shape        []string `json:"shape" yaml:"shape"`
	Capabilities []string `json:"capabilities" yaml:"capabilities"`
}

// Describe lists the published classes and what is attached to them.
func (p *Platform) Describe() []ClassInfo {
	s := p.classes.Load()
	if s == nil {
		return nil
	}
	out := make([]ClassInfo, 0, len(s.order))
	for _, name := range s.order {
		cls := s.byName[name]
		info := ClassInfo{
			Name:         name,
			Generation:   cls.Generation(),
			Shape:        shapeNames(cls.def.Shape),
			Capabilities: []string{},
		}
		for _, c := range cls.Capabilities() {
			info.Capabilities = append(info.Capabilities, c.Name())
		}
		out = append(out, info)
	}
	return out
}

func shapeNames(types []reflect.Type) []string {
	out := make([]string, 0, len(types))
	for _, t := range types {
		out = append(out, t.Name())
	}
	return out
}

// ServeHTTP serves the published route table.
func (p *Platform) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	t := p.table.Load()
	if t == nil {
		http.Error(w, ErrNotBooted.Error(), http.StatusServiceUnavailable)
		return
	}
	t.router.ServeHTTP(w, r)
}

func (p *Platform) handleExtensions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, p.Describe())
}

func defaultPage(route Route) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"route":  route.Name,
			"path":   r.URL.Path,
			"params": URLParams(r),
		})
	})
}

// URLParams returns the chi URL parameters of r by name.
func URLParams(r *http.Request) map[string]string {
	out := map[string]string{}
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return out
	}
	for i, key := range rctx.URLParams.Keys {
		if key == "*" {
			continue
		}
		out[key] = rctx.URLParams.Values[i]
	}
	return out
}

// WriteJSON writes v as a JSON response with status.
func WriteJSON(w http.ResponseWriter, status int, v any) { writeJSON(w, status, v) }

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
