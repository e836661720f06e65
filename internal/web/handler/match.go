package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mcoot/battleship-go2/internal/model"
	"github.com/mcoot/battleship-go2/internal/services/bot"
	"github.com/mcoot/battleship-go2/internal/services/match"
	"github.com/mcoot/battleship-go2/internal/web/middleware"
	"github.com/mcoot/battleship-go2/internal/web/templates/components"
	"github.com/mcoot/battleship-go2/internal/web/templates/layout"
	"github.com/mcoot/battleship-go2/internal/web/templates/pages"
	"github.com/mcoot/battleship-go2/internal/web/ws"
)

// MatchHandler handles match pages and form actions. The browser always plays
// the human side.
type MatchHandler struct {
	controller *match.Controller
	botService *bot.Service
	hubManager *ws.HubManager
	logger     *slog.Logger
}

// NewMatchHandler creates a new MatchHandler
func NewMatchHandler(controller *match.Controller, botService *bot.Service, hubManager *ws.HubManager, logger *slog.Logger) *MatchHandler {
	return &MatchHandler{
		controller: controller,
		botService: botService,
		hubManager: hubManager,
		logger:     logger,
	}
}

func matchPath(id model.MatchID) string {
	return "/matches/" + string(id)
}

// Create starts a new match and redirects to it
func (h *MatchHandler) Create(w http.ResponseWriter, r *http.Request) {
	m, err := h.controller.CreateMatch(r.Context())
	if err != nil {
		middleware.SetFlash(w, middleware.FlashError, "Could not create match: "+err.Error())
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	middleware.SetFlash(w, middleware.FlashSuccess, "Match created. Place your fleet.")
	http.Redirect(w, r, matchPath(m.ID()), http.StatusSeeOther)
}

// View renders the match page
func (h *MatchHandler) View(w http.ResponseWriter, r *http.Request) {
	id := model.MatchID(mux.Vars(r)["id"])

	m, err := h.controller.GetMatch(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrMatchNotFound) {
			middleware.SetFlash(w, middleware.FlashError, "Match not found")
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		h.logger.Error("failed to load match",
			slog.String("match_id", string(id)),
			slog.String("error", err.Error()))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := buildMatchData(m)
	data.PageData = layout.PageData{
		Title: "Match",
		Flash: middleware.GetFlash(r.Context()),
	}

	render(w, r, pages.Match(data))
}

// PlaceShip places one ship of the human fleet
func (h *MatchHandler) PlaceShip(w http.ResponseWriter, r *http.Request) {
	id := model.MatchID(mux.Vars(r)["id"])
	if err := r.ParseForm(); err != nil {
		h.redirectWithError(w, r, id, "Invalid form data")
		return
	}

	length, errL := strconv.Atoi(r.FormValue("length"))
	row, errR := strconv.Atoi(r.FormValue("row"))
	col, errC := strconv.Atoi(r.FormValue("col"))
	if errL != nil || errR != nil || errC != nil {
		h.redirectWithError(w, r, id, "Length, row and column must be numbers")
		return
	}
	direction := model.Direction(r.FormValue("direction"))

	if _, err := h.controller.PlaceShip(r.Context(), id, model.SideHuman, length, model.Position{Row: row, Col: col}, direction); err != nil {
		h.redirectWithError(w, r, id, "Could not place ship: "+err.Error())
		return
	}
	http.Redirect(w, r, matchPath(id), http.StatusSeeOther)
}

// RandomizeFleet lays out the human fleet at random
func (h *MatchHandler) RandomizeFleet(w http.ResponseWriter, r *http.Request) {
	id := model.MatchID(mux.Vars(r)["id"])
	if _, err := h.controller.RandomizeFleet(r.Context(), id, model.SideHuman); err != nil {
		h.redirectWithError(w, r, id, "Could not randomize fleet: "+err.Error())
		return
	}
	http.Redirect(w, r, matchPath(id), http.StatusSeeOther)
}

// ClearFleet removes the human fleet
func (h *MatchHandler) ClearFleet(w http.ResponseWriter, r *http.Request) {
	id := model.MatchID(mux.Vars(r)["id"])
	if _, err := h.controller.ClearFleet(r.Context(), id, model.SideHuman); err != nil {
		h.redirectWithError(w, r, id, "Could not clear fleet: "+err.Error())
		return
	}
	http.Redirect(w, r, matchPath(id), http.StatusSeeOther)
}

// Attack fires the human's shot, then lets the computer play out its turn
func (h *MatchHandler) Attack(w http.ResponseWriter, r *http.Request) {
	id := model.MatchID(mux.Vars(r)["id"])
	if err := r.ParseForm(); err != nil {
		h.redirectWithError(w, r, id, "Invalid form data")
		return
	}

	row, errR := strconv.Atoi(r.FormValue("row"))
	col, errC := strconv.Atoi(r.FormValue("col"))
	if errR != nil || errC != nil {
		h.redirectWithError(w, r, id, "Row and column must be numbers")
		return
	}
	pos := model.Position{Row: row, Col: col}

	out, err := h.controller.Attack(r.Context(), id, model.SideHuman, pos)
	if err != nil {
		h.redirectWithError(w, r, id, "Could not fire: "+err.Error())
		return
	}

	msg := describeOutcome(out)
	if out.TurnSwitched && !out.GameOver {
		replies, err := h.botService.ProcessComputerTurns(r.Context(), id)
		if err != nil {
			h.logger.Error("computer turn failed",
				slog.String("match_id", string(id)),
				slog.String("error", err.Error()))
		}
		for _, reply := range replies {
			msg += " " + describeOutcome(reply)
		}
	}

	middleware.SetFlash(w, middleware.FlashInfo, msg)
	http.Redirect(w, r, matchPath(id), http.StatusSeeOther)
}

// Delete removes the match
func (h *MatchHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.MatchID(mux.Vars(r)["id"])
	if err := h.controller.DeleteMatch(r.Context(), id); err != nil {
		h.redirectWithError(w, r, id, "Could not delete match: "+err.Error())
		return
	}
	middleware.SetFlash(w, middleware.FlashSuccess, "Match deleted")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Events streams match events over a websocket
func (h *MatchHandler) Events(w http.ResponseWriter, r *http.Request) {
	id := model.MatchID(mux.Vars(r)["id"])

	if _, err := h.controller.GetMatch(r.Context(), id); err != nil {
		http.Error(w, "Match not found", http.StatusNotFound)
		return
	}

	hub := h.hubManager.Acquire(id)
	defer h.hubManager.Release(hub)
	ws.ServeWS(w, r, hub, h.logger)
}

func (h *MatchHandler) redirectWithError(w http.ResponseWriter, r *http.Request, id model.MatchID, msg string) {
	middleware.SetFlash(w, middleware.FlashError, msg)
	http.Redirect(w, r, matchPath(id), http.StatusSeeOther)
}

func describeOutcome(out model.Outcome) string {
	who := "You"
	if out.Side == model.SideComputer {
		who = "The computer"
	}

	var msg string
	switch {
	case out.Exhausted:
		msg = who + " had nothing left to fire at."
	case out.Sunk != "":
		msg = fmt.Sprintf("%s hit %s and sank the %s.", who, out.Position, out.Sunk)
	case out.Hit:
		msg = fmt.Sprintf("%s hit %s.", who, out.Position)
	default:
		msg = fmt.Sprintf("%s missed at %s.", who, out.Position)
	}

	if out.GameOver {
		switch out.Winner {
		case model.WinnerHuman:
			msg += " You win!"
		case model.WinnerComputer:
			msg += " The computer wins."
		default:
			msg += " It's a tie."
		}
	}
	return msg
}

func buildMatchData(m *match.Match) pages.MatchData {
	over := m.IsOver()
	humanTurn := m.CurrentTurn() == model.SideHuman
	ready := m.FleetComplete(model.SideHuman) && m.FleetComplete(model.SideComputer)

	data := pages.MatchData{
		MatchID:     m.ID(),
		Phase:       m.Phase(),
		CurrentTurn: m.CurrentTurn(),
		Winner:      m.Winner(),
		Commitment:  m.Commitment(),
		Remaining:   m.RemainingFleet(model.SideHuman),
		Log:         m.Log(),
		Own:         components.BoardData{ID: "board-human", Title: "Your fleet", MatchID: m.ID()},
		Enemy:       components.BoardData{ID: "board-computer", Title: "Enemy waters", MatchID: m.ID()},
	}

	for _, pos := range model.AllPositions() {
		data.Own.Cells[pos.Row][pos.Col] = cellFor(m, model.SideHuman, pos, true)

		enemy := cellFor(m, model.SideComputer, pos, over)
		enemy.CanAttack = !over && humanTurn && ready && !m.WasAttacked(model.SideComputer, pos)
		data.Enemy.Cells[pos.Row][pos.Col] = enemy
	}

	data.OwnFleet = fleetStatus(m.Board(model.SideHuman), false)
	data.EnemyFleet = fleetStatus(m.Board(model.SideComputer), !over)
	return data
}

func cellFor(m *match.Match, side model.Side, pos model.Position, reveal bool) components.Cell {
	cell := components.Cell{Position: pos, State: components.CellWater}
	view := m.Board(side)
	ship := view.ShipAt(pos)

	switch {
	case m.WasAttacked(side, pos) && ship != nil && ship.IsSunk():
		cell.State = components.CellSunk
	case m.WasAttacked(side, pos) && ship != nil:
		cell.State = components.CellHit
	case m.WasAttacked(side, pos):
		cell.State = components.CellMiss
	case ship != nil && reveal:
		cell.State = components.CellShip
	}
	return cell
}

func fleetStatus(view match.BoardView, hideDamage bool) []components.ShipStatus {
	ships := view.Ships()
	out := make([]components.ShipStatus, 0, len(ships))
	for _, s := range ships {
		out = append(out, components.ShipStatus{
			Class:  s.Class(),
			Length: s.Length(),
			Hits:   s.Hits(),
			Sunk:   s.IsSunk(),
			Hidden: hideDamage && !s.IsSunk(),
		})
	}
	return out
}
