package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/battleship-go2/internal/api/request"
	"github.com/mcoot/battleship-go2/internal/api/response"
	"github.com/mcoot/battleship-go2/internal/model"
	"github.com/mcoot/battleship-go2/internal/services/bot"
	"github.com/mcoot/battleship-go2/internal/services/match"
)

// MatchHandler handles match endpoints
type MatchHandler struct {
	controller *match.Controller
	botService *bot.Service
	logger     *slog.Logger
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(controller *match.Controller, botService *bot.Service, logger *slog.Logger) *MatchHandler {
	return &MatchHandler{
		controller: controller,
		botService: botService,
		logger:     logger,
	}
}

func matchID(r *http.Request) model.MatchID {
	return model.MatchID(mux.Vars(r)["id"])
}

// Create handles POST /api/v1/matches
func (h *MatchHandler) Create(w http.ResponseWriter, r *http.Request) {
	m, err := h.controller.CreateMatch(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, response.MatchFromModel(m))
}

// List handles GET /api/v1/matches
func (h *MatchHandler) List(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.controller.ListMatches(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.MatchList{Matches: summaries})
}

// Get handles GET /api/v1/matches/{id}
func (h *MatchHandler) Get(w http.ResponseWriter, r *http.Request) {
	m, err := h.controller.GetMatch(r.Context(), matchID(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.MatchFromModel(m))
}

// Delete handles DELETE /api/v1/matches/{id}
func (h *MatchHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.controller.DeleteMatch(r.Context(), matchID(r)); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}

// PlaceShip handles POST /api/v1/matches/{id}/ships
func (h *MatchHandler) PlaceShip(w http.ResponseWriter, r *http.Request) {
	var req request.PlaceShipRequest
	if err := decodeBody(r, &req, false); err != nil {
		WriteError(w, err)
		return
	}
	side, err := request.ParseSide(req.Side)
	if err != nil {
		WriteError(w, err)
		return
	}

	origin := model.Position{Row: req.Row, Col: req.Col}
	m, err := h.controller.PlaceShip(r.Context(), matchID(r), side, req.Length, origin, model.Direction(req.Direction))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, response.MatchFromModel(m))
}

// RandomizeFleet handles POST /api/v1/matches/{id}/fleet/random
func (h *MatchHandler) RandomizeFleet(w http.ResponseWriter, r *http.Request) {
	var req request.SideRequest
	if err := decodeBody(r, &req, true); err != nil {
		WriteError(w, err)
		return
	}
	side, err := request.ParseSide(req.Side)
	if err != nil {
		WriteError(w, err)
		return
	}

	m, err := h.controller.RandomizeFleet(r.Context(), matchID(r), side)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.MatchFromModel(m))
}

// ClearFleet handles DELETE /api/v1/matches/{id}/fleet/{side}
func (h *MatchHandler) ClearFleet(w http.ResponseWriter, r *http.Request) {
	side, err := request.ParseSide(mux.Vars(r)["side"])
	if err != nil {
		WriteError(w, err)
		return
	}

	m, err := h.controller.ClearFleet(r.Context(), matchID(r), side)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.MatchFromModel(m))
}

// Attack handles POST /api/v1/matches/{id}/attacks
func (h *MatchHandler) Attack(w http.ResponseWriter, r *http.Request) {
	var req request.AttackRequest
	if err := decodeBody(r, &req, false); err != nil {
		WriteError(w, err)
		return
	}
	side, err := request.ParseSide(req.Side)
	if err != nil {
		WriteError(w, err)
		return
	}

	id := matchID(r)
	out, err := h.controller.Attack(r.Context(), id, side, model.Position{Row: req.Row, Col: req.Col})
	if err != nil {
		WriteError(w, err)
		return
	}
	h.respondWithOutcome(r.Context(), w, id, out)
}

// ComputerTurn handles POST /api/v1/matches/{id}/computer-turn
func (h *MatchHandler) ComputerTurn(w http.ResponseWriter, r *http.Request) {
	id := matchID(r)
	out, err := h.controller.ComputerTurn(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	h.respondWithOutcome(r.Context(), w, id, out)
}

// ComputerTurns handles POST /api/v1/matches/{id}/computer-turns
func (h *MatchHandler) ComputerTurns(w http.ResponseWriter, r *http.Request) {
	id := matchID(r)
	outcomes, err := h.botService.ProcessComputerTurns(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	if outcomes == nil {
		outcomes = []model.Outcome{}
	}

	m, err := h.controller.GetMatch(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.ComputerTurnsResponse{
		Outcomes: outcomes,
		Match:    response.MatchFromModel(m),
	})
}

func (h *MatchHandler) respondWithOutcome(ctx context.Context, w http.ResponseWriter, id model.MatchID, out model.Outcome) {
	m, err := h.controller.GetMatch(ctx, id)
	if err != nil {
		h.logger.Error("failed to reload match after attack",
			slog.String("match_id", string(id)),
			slog.String("error", err.Error()),
		)
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.AttackResponse{
		Outcome: out,
		Match:   response.MatchFromModel(m),
	})
}
