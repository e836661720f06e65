package handler

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/battleship-go2/internal/services/match"
	"github.com/mcoot/battleship-go2/internal/web/middleware"
	"github.com/mcoot/battleship-go2/internal/web/templates/layout"
	"github.com/mcoot/battleship-go2/internal/web/templates/pages"
)

// HomeHandler handles the home page
type HomeHandler struct {
	controller *match.Controller
	logger     *slog.Logger
}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler(controller *match.Controller, logger *slog.Logger) *HomeHandler {
	return &HomeHandler{controller: controller, logger: logger}
}

// Home renders the match list
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	matches, err := h.controller.ListMatches(r.Context())
	if err != nil {
		h.logger.Error("failed to list matches", slog.String("error", err.Error()))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := pages.HomeData{
		PageData: layout.PageData{
			Title: "Home",
			Flash: middleware.GetFlash(r.Context()),
		},
		Matches: matches,
	}

	render(w, r, pages.Home(data))
}
