package http

import (
	"errors"
	"log/slog"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	"nba-scores-dashboard/internal/domain"
	"nba-scores-dashboard/internal/logging"
	"nba-scores-dashboard/internal/poller"
	"nba-scores-dashboard/internal/scores"
	"nba-scores-dashboard/internal/store"
	"nba-scores-dashboard/internal/teams"
	"nba-scores-dashboard/internal/timeutil"
	"nba-scores-dashboard/internal/web"
)

const (
	msgUpstreamUnavailable = "Live score data is temporarily unavailable. Please try again shortly."
	msgDateOutOfRange      = "Selected date is outside the supported window."
	msgInvalidDate         = "invalid date format (expected YYYY-MM-DD)"
)

// Options carries display settings shared by the dashboard handlers.
type Options struct {
	Location    *time.Location
	HistoryDays int
	FutureDays  int
	AutoRefresh time.Duration
}

// Handler wires HTTP routes to the scores service and the dashboard renderer.
type Handler struct {
	svc      *scores.Service
	store    *store.MemoryStore
	renderer *web.Renderer
	logger   *slog.Logger
	now      func() time.Time
	statusFn func() poller.Status
	opts     Options
}

// NewHandler constructs a Handler with defaults.
func NewHandler(svc *scores.Service, st *store.MemoryStore, renderer *web.Renderer, logger *slog.Logger, statusFn func() poller.Status, opts Options) *Handler {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &Handler{
		svc:      svc,
		store:    st,
		renderer: renderer,
		logger:   logger,
		now:      time.Now,
		statusFn: statusFn,
		opts:     opts,
	}
}

// Dashboard renders the scoreboard page for the requested date and filters.
func (h *Handler) Dashboard(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	date := r.URL.Query().Get("date")
	teamFilter := normalizeTeamFilter(r.URL.Query()["team"])

	status := nethttp.StatusOK
	errMsg := ""
	board, err := h.svc.GamesForDate(r.Context(), date, teamFilter)
	if err != nil {
		board = emptyBoard(h.fallbackDate(date))
		switch {
		case errors.Is(err, scores.ErrDateOutOfRange):
			status = nethttp.StatusBadRequest
			errMsg = msgDateOutOfRange
		case isDateFormatError(date):
			status = nethttp.StatusBadRequest
			errMsg = msgInvalidDate
		default:
			status = nethttp.StatusBadGateway
			errMsg = msgUpstreamUnavailable
			logging.Error(loggerFromContext(r, h.logger), "dashboard fetch failed", err)
		}
	}

	view := web.BuildDashboardView(board, web.ViewParams{
		TeamFilter:  teamFilter,
		HistoryDays: h.opts.HistoryDays,
		FutureDays:  h.opts.FutureDays,
		Location:    h.opts.Location,
		Now:         h.now(),
		UpdatedAt:   h.updatedAt(),
		AutoRefresh: h.opts.AutoRefresh,
		Error:       errMsg,
	})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.renderer.RenderDashboard(w, view); err != nil {
		logging.Error(loggerFromContext(r, h.logger), "dashboard render failed", err)
	}
}

// Refresh drops the cached entry for the requested date and redirects back
// to the dashboard, which refetches on the next load.
func (h *Handler) Refresh(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodPost {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.ParseForm(); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid form", h.logger)
		return
	}

	date := r.PostForm.Get("date")
	if date == "" {
		date = h.svc.Today()
	}
	h.svc.Invalidate(date)
	logging.Info(loggerFromContext(r, h.logger), "cache invalidated by refresh",
		slog.String(logging.FieldDate, date),
	)

	query := url.Values{}
	query.Set("date", date)
	for _, team := range normalizeTeamFilter(r.PostForm["team"]) {
		query.Add("team", team)
	}
	nethttp.Redirect(w, r, "/?"+query.Encode(), nethttp.StatusSeeOther)
}

// Games returns the scoreboard for a date as JSON.
func (h *Handler) Games(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	date := r.URL.Query().Get("date")
	teamFilter := normalizeTeamFilter(r.URL.Query()["team"])

	board, err := h.svc.GamesForDate(r.Context(), date, teamFilter)
	if err != nil {
		switch {
		case errors.Is(err, scores.ErrDateOutOfRange):
			writeError(w, r, nethttp.StatusBadRequest, "date outside supported window", h.logger)
		case isDateFormatError(date):
			writeError(w, r, nethttp.StatusBadRequest, msgInvalidDate, h.logger)
		default:
			logging.Error(loggerFromContext(r, h.logger), "games fetch failed", err)
			writeError(w, r, nethttp.StatusBadGateway, "upstream data source unavailable", h.logger)
		}
		return
	}

	writeJSON(w, nethttp.StatusOK, board, h.logger)
}

// GameByID returns a specific game from the latest snapshot if present.
func (h *Handler) GameByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	idRaw := strings.TrimPrefix(r.URL.Path, "/api/games/")
	id, err := url.PathUnescape(idRaw)
	if err != nil || id == "" || strings.ContainsAny(id, " \t/") {
		writeError(w, r, nethttp.StatusBadRequest, "invalid game id", h.logger)
		return
	}

	game, ok := h.store.GetGame(id)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "game not found", h.logger)
		return
	}

	writeJSON(w, nethttp.StatusOK, game, h.logger)
}

// Teams returns the full team registry as JSON.
func (h *Handler) Teams(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, teams.All(), h.logger)
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic based on recent poller health.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	if h.statusFn().IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := h.statusFn().LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

func (h *Handler) updatedAt() time.Time {
	if h.store == nil {
		return time.Time{}
	}
	return h.store.UpdatedAt()
}

func (h *Handler) fallbackDate(date string) string {
	if _, err := timeutil.ParseDate(date); err == nil {
		return date
	}
	return h.svc.Today()
}

func emptyBoard(date string) domain.ScoreboardResponse {
	return domain.NewScoreboardResponse(date, nil, 0)
}

func normalizeTeamFilter(values []string) []string {
	var filter []string
	for _, v := range values {
		v = strings.ToUpper(strings.TrimSpace(v))
		if v != "" {
			filter = append(filter, v)
		}
	}
	return filter
}

func isDateFormatError(date string) bool {
	if date == "" {
		return false
	}
	_, err := timeutil.ParseDate(date)
	return err != nil
}
