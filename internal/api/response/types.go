package response

import (
	"time"

	"github.com/mcoot/battleship-go2/internal/model"
	"github.com/mcoot/battleship-go2/internal/services/match"
)

// Health is the response for the health check
type Health struct {
	Status string `json:"status"`
}

// ShipClass is an unplaced fleet entry
type ShipClass struct {
	Name   string `json:"name"`
	Length int    `json:"length"`
}

// Ship represents a placed ship
type Ship struct {
	Class  string           `json:"class"`
	Length int              `json:"length"`
	Hits   int              `json:"hits"`
	Sunk   bool             `json:"sunk"`
	Cells  []model.Position `json:"cells"`
}

// Board is one side's board. Ships the viewer may not see are omitted.
type Board struct {
	Side           string           `json:"side"`
	Ships          []Ship           `json:"ships"`
	Hits           []model.Position `json:"hits"`
	Misses         []model.Position `json:"misses"`
	ShipsRemaining int              `json:"ships_remaining"`
	FleetComplete  bool             `json:"fleet_complete"`
	RemainingFleet []ShipClass      `json:"remaining_fleet,omitempty"`
}

// Match is the full state of a match as the human sees it
type Match struct {
	ID          string                 `json:"id"`
	Phase       string                 `json:"phase"`
	CurrentTurn string                 `json:"current_turn"`
	Over        bool                   `json:"over"`
	Winner      string                 `json:"winner,omitempty"`
	Human       Board                  `json:"human"`
	Computer    Board                  `json:"computer"`
	Commitment  *model.FleetCommitment `json:"commitment,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

// MatchFromModel converts a match, hiding the computer's afloat ships until it is over
func MatchFromModel(m *match.Match) Match {
	return Match{
		ID:          string(m.ID()),
		Phase:       string(m.Phase()),
		CurrentTurn: string(m.CurrentTurn()),
		Over:        m.IsOver(),
		Winner:      string(m.Winner()),
		Human:       BoardFromModel(m, model.SideHuman, true),
		Computer:    BoardFromModel(m, model.SideComputer, m.IsOver()),
		Commitment:  m.Commitment(),
		CreatedAt:   m.CreatedAt(),
		UpdatedAt:   m.UpdatedAt(),
	}
}

// BoardFromModel converts one side's board. Sunk ships are always shown.
func BoardFromModel(m *match.Match, side model.Side, revealAll bool) Board {
	view := m.Board(side)
	b := Board{
		Side:           string(side),
		Ships:          []Ship{},
		Hits:           positions(view.HitAttacks()),
		Misses:         positions(view.MissedAttacks()),
		ShipsRemaining: view.ShipsRemaining(),
		FleetComplete:  m.FleetComplete(side),
	}
	for _, ship := range view.Ships() {
		if !revealAll && !ship.IsSunk() {
			continue
		}
		b.Ships = append(b.Ships, Ship{
			Class:  ship.Class(),
			Length: ship.Length(),
			Hits:   ship.Hits(),
			Sunk:   ship.IsSunk(),
			Cells:  view.ShipCoordinates(ship),
		})
	}
	for _, class := range m.RemainingFleet(side) {
		b.RemainingFleet = append(b.RemainingFleet, ShipClass{Name: class.Name, Length: class.Length})
	}
	return b
}

func positions(p []model.Position) []model.Position {
	if p == nil {
		return []model.Position{}
	}
	return p
}

// MatchList is the response for listing matches
type MatchList struct {
	Matches []model.MatchSummary `json:"matches"`
}

// AttackResponse is the response for a single resolved attack
type AttackResponse struct {
	Outcome model.Outcome `json:"outcome"`
	Match   Match         `json:"match"`
}

// ComputerTurnsResponse is the response for a cascade of computer attacks
type ComputerTurnsResponse struct {
	Outcomes []model.Outcome `json:"outcomes"`
	Match    Match           `json:"match"`
}
