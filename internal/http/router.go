package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/nhl-edge-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux. Unknown methods on known paths get 405
// from the mux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("GET /health", handler.Health)
	mux.HandleFunc("GET /ready", handler.Ready)
	mux.HandleFunc("GET /home", handler.Home)
	mux.HandleFunc("GET /games", handler.Games)
	mux.HandleFunc("GET /teams", handler.Teams)
	mux.HandleFunc("GET /teams/{id}/logo", handler.TeamLogo)
	mux.HandleFunc("GET /settings", handler.GetSettings)
	mux.HandleFunc("PUT /settings", handler.PutSettings)
	return mux
}
