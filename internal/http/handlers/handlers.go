package handlers

import (
	"context"
	"log/slog"
	nethttp "net/http"
	"strconv"
	"strings"
	"time"

	appgames "github.com/preston-bernstein/nhl-edge-service/internal/app/games"
	apphome "github.com/preston-bernstein/nhl-edge-service/internal/app/home"
	appteams "github.com/preston-bernstein/nhl-edge-service/internal/app/teams"
	domaingames "github.com/preston-bernstein/nhl-edge-service/internal/domain/games"
	domainhome "github.com/preston-bernstein/nhl-edge-service/internal/domain/home"
	domainteams "github.com/preston-bernstein/nhl-edge-service/internal/domain/teams"
	"github.com/preston-bernstein/nhl-edge-service/internal/http/requestutil"
	"github.com/preston-bernstein/nhl-edge-service/internal/logging"
	"github.com/preston-bernstein/nhl-edge-service/internal/logo"
	"github.com/preston-bernstein/nhl-edge-service/internal/settings"
	"github.com/preston-bernstein/nhl-edge-service/internal/teamcache"
)

type nowFunc func() time.Time

// HomeLoader loads the home screen.
type HomeLoader interface {
	Load(ctx context.Context, req apphome.Request) (apphome.Result, error)
}

// GamesLoader loads the games screen.
type GamesLoader interface {
	Load(ctx context.Context, req appgames.Request) (appgames.Result, error)
}

// TeamsLoader loads the teams screen.
type TeamsLoader interface {
	Load(ctx context.Context, req appteams.Request) (appteams.Result, error)
}

// TeamIndex resolves team ids for logo lookups.
type TeamIndex interface {
	Load(ctx context.Context, forceRefresh bool) (teamcache.Generation, error)
}

// LogoRenderer renders a team logo for a slot.
type LogoRenderer interface {
	Render(ctx context.Context, slot string, key logo.Key) logo.Result
}

// Config wires a Handler.
type Config struct {
	Home     HomeLoader
	Games    GamesLoader
	Teams    TeamsLoader
	Index    TeamIndex
	Logos    LogoRenderer
	Settings settings.Store
	Location *time.Location
	Logger   *slog.Logger
}

// Handler wires HTTP routes to the screen loaders.
type Handler struct {
	home     HomeLoader
	games    GamesLoader
	teams    TeamsLoader
	index    TeamIndex
	logos    LogoRenderer
	settings settings.Store
	loc      *time.Location
	logger   *slog.Logger
	now      nowFunc
}

// NewHandler constructs a Handler with defaults.
func NewHandler(cfg Config) *Handler {
	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}
	return &Handler{
		home:     cfg.Home,
		games:    cfg.Games,
		teams:    cfg.Teams,
		index:    cfg.Index,
		logos:    cfg.Logos,
		settings: cfg.Settings,
		loc:      loc,
		logger:   cfg.Logger,
		now:      time.Now,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic: the settings store must answer.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if pinger, ok := h.settings.(interface{ Ping(context.Context) error }); ok {
		if err := pinger.Ping(r.Context()); err != nil {
			logging.Warn(loggerFromContext(r, h.logger), "settings store not ready", "error", err)
			writeError(w, r, nethttp.StatusServiceUnavailable, "settings store unavailable", h.logger)
			return
		}
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// Home returns today's games and the featured teams.
func (h *Handler) Home(w nethttp.ResponseWriter, r *nethttp.Request) {
	loc, ok := h.location(w, r)
	if !ok {
		return
	}
	logger := loggerFromContext(r, h.logger)

	res, err := h.home.Load(r.Context(), apphome.Request{
		ForceRefreshTeams: requestutil.QueryBool(r, "refresh"),
		Location:          loc,
		Now:               h.now(),
	})
	if err != nil {
		writeLoadError(w, r, err, logger)
		return
	}

	logging.Info(logger, "served home",
		logging.FieldSource, string(res.Source),
		logging.FieldCount, len(res.Today),
	)
	writeJSON(w, nethttp.StatusOK, domainhome.NewResponse(string(res.Source), res.Date, res.Today, res.Featured), h.logger)
}

// Games returns every game sorted by date.
func (h *Handler) Games(w nethttp.ResponseWriter, r *nethttp.Request) {
	loc, ok := h.location(w, r)
	if !ok {
		return
	}
	logger := loggerFromContext(r, h.logger)

	res, err := h.games.Load(r.Context(), appgames.Request{Location: loc, Now: h.now()})
	if err != nil {
		writeLoadError(w, r, err, logger)
		return
	}

	logging.Info(logger, "served games",
		logging.FieldSource, string(res.Source),
		logging.FieldCount, len(res.Games),
	)
	writeJSON(w, nethttp.StatusOK, domaingames.NewListResponse(string(res.Source), res.Games), h.logger)
}

// Teams returns teams sorted by name, optionally fuzzy filtered by q.
func (h *Handler) Teams(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	res, err := h.teams.Load(r.Context(), appteams.Request{
		ForceRefresh: requestutil.QueryBool(r, "refresh"),
		Query:        query,
	})
	if err != nil {
		writeLoadError(w, r, err, logger)
		return
	}

	logging.Info(logger, "served teams",
		logging.FieldSource, string(res.Source),
		logging.FieldCount, len(res.Teams),
	)
	writeJSON(w, nethttp.StatusOK, domainteams.NewListResponse(string(res.Source), query, res.Teams), h.logger)
}

// TeamLogo renders the team's SVG logo as PNG. Any failure is a bare 404.
func (h *Handler) TeamLogo(w nethttp.ResponseWriter, r *nethttp.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		writeError(w, r, nethttp.StatusBadRequest, "invalid team id", h.logger)
		return
	}
	size, ok := requestutil.QueryInt(r, "size", logo.DefaultSize)
	if !ok || size <= 0 {
		writeError(w, r, nethttp.StatusBadRequest, "invalid size", h.logger)
		return
	}

	url := h.logoURL(r.Context(), loggerFromContext(r, h.logger), id)
	if url == "" || h.logos == nil {
		nethttp.NotFound(w, r)
		return
	}

	res := h.logos.Render(r.Context(), strconv.Itoa(id), logo.Key{URL: url, Size: size})
	if !res.OK() {
		nethttp.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(nethttp.StatusOK)
	_, _ = w.Write(res.PNG)
}

func (h *Handler) logoURL(ctx context.Context, logger *slog.Logger, id int) string {
	if h.index == nil {
		return ""
	}
	if h.settings != nil {
		useTestData, err := h.settings.UseTestData(ctx)
		if err != nil {
			logging.Warn(logger, "settings read failed, skipping logo", "error", err)
			return ""
		}
		if useTestData {
			return ""
		}
	}
	gen, err := h.index.Load(ctx, false)
	if err != nil {
		return ""
	}
	row, ok := gen.ByID[id]
	if !ok || row.LogoURL == nil {
		return ""
	}
	return strings.TrimSpace(*row.LogoURL)
}

func (h *Handler) location(w nethttp.ResponseWriter, r *nethttp.Request) (*time.Location, bool) {
	tz := strings.TrimSpace(r.URL.Query().Get("tz"))
	if tz == "" {
		return h.loc, true
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid timezone", h.logger)
		return nil, false
	}
	return loc, true
}
