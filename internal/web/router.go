package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/battleship-go2/internal/services/bot"
	"github.com/mcoot/battleship-go2/internal/services/match"
	"github.com/mcoot/battleship-go2/internal/web/handler"
	"github.com/mcoot/battleship-go2/internal/web/middleware"
	"github.com/mcoot/battleship-go2/internal/web/ws"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger          *slog.Logger
	MatchController *match.Controller
	BotService      *bot.Service
	HubManager      *ws.HubManager
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	flashMiddleware := middleware.Flash()

	// Apply global middleware to all routes
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	// Create hub manager if not provided
	hubManager := cfg.HubManager
	if hubManager == nil {
		hubManager = ws.NewHubManager(cfg.Logger)
	}

	// Create handlers
	homeHandler := handler.NewHomeHandler(cfg.MatchController, cfg.Logger)
	matchHandler := handler.NewMatchHandler(cfg.MatchController, cfg.BotService, hubManager, cfg.Logger)

	// Websocket stream sits outside the flash middleware so upgrades never set cookies
	r.HandleFunc("/matches/{id}/events", matchHandler.Events).Methods(http.MethodGet)

	pages := r.NewRoute().Subrouter()
	pages.Use(flashMiddleware)
	pages.HandleFunc("/", homeHandler.Home).Methods(http.MethodGet)
	pages.HandleFunc("/matches", matchHandler.Create).Methods(http.MethodPost)
	pages.HandleFunc("/matches/{id}", matchHandler.View).Methods(http.MethodGet)
	pages.HandleFunc("/matches/{id}/ships", matchHandler.PlaceShip).Methods(http.MethodPost)
	pages.HandleFunc("/matches/{id}/fleet/random", matchHandler.RandomizeFleet).Methods(http.MethodPost)
	pages.HandleFunc("/matches/{id}/fleet/clear", matchHandler.ClearFleet).Methods(http.MethodPost)
	pages.HandleFunc("/matches/{id}/attack", matchHandler.Attack).Methods(http.MethodPost)
	pages.HandleFunc("/matches/{id}/delete", matchHandler.Delete).Methods(http.MethodPost)

	return r
}
