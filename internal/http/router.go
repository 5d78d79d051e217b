package http

import (
	nethttp "net/http"

	"nba-scores-dashboard/internal/web"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/", handler.root)
	mux.HandleFunc("/refresh", handler.Refresh)
	mux.HandleFunc("/api/games", handler.Games)
	mux.HandleFunc("/api/games/", handler.GameByID)
	mux.HandleFunc("/api/teams", handler.Teams)
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.Handle("/static/", web.StaticHandler())
	return mux
}

// root keeps the dashboard on "/" while everything else under the bare
// pattern stays a 404.
func (h *Handler) root(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.URL.Path != "/" {
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
		return
	}
	h.Dashboard(w, r)
}
