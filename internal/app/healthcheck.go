package app

import (
	"net/http"

	"github.com/specialistvlad/overlaygo/internal/ctxlog"
	"github.com/specialistvlad/overlaygo/internal/host"
)

// Health is the body of the health check response.
type Health struct {
	Status         string `json:"status"`
	Cycles         uint64 `json:"cycles"`
	MenuGeneration uint64 `json:"menu_generation"`
	Dev            bool   `json:"dev"`
}

// healthHandler reports whether the host has published a cycle.
func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	ctxlog.FromContext(r.Context()).Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
	host.WriteJSON(w, http.StatusOK, Health{
		Status:         "ok",
		Cycles:         a.host.Cycles(),
		MenuGeneration: a.menu.Generation(),
		Dev:            a.config.Dev,
	})
}
