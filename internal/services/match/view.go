package match

import (
	"github.com/mcoot/battleship-go2/internal/model"
	"github.com/mcoot/battleship-go2/internal/services/board"
)

// BoardView exposes a side's board without allowing mutation
type BoardView struct {
	board *board.Board
}

func (v BoardView) IsShipAt(pos model.Position) bool {
	return v.board.IsShipAt(pos)
}

func (v BoardView) ShipAt(pos model.Position) *board.Ship {
	return v.board.ShipAt(pos)
}

func (v BoardView) Ships() []*board.Ship {
	return v.board.Ships()
}

func (v BoardView) ShipCoordinates(ship *board.Ship) []model.Position {
	return v.board.ShipCoordinates(ship)
}

func (v BoardView) ShipCount() int {
	return v.board.ShipCount()
}

func (v BoardView) ShipsRemaining() int {
	return v.board.ShipsRemaining()
}

func (v BoardView) AllShipsSunk() bool {
	return v.board.AllShipsSunk()
}

func (v BoardView) MissedAttacks() []model.Position {
	return v.board.MissedAttacks()
}

func (v BoardView) HitAttacks() []model.Position {
	return v.board.HitAttacks()
}

func (v BoardView) Occupied() []model.Position {
	return v.board.Occupied()
}
