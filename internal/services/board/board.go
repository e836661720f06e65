package board

import (
	"fmt"
	"sort"

	"github.com/mcoot/battleship-go2/internal/model"
)

// Board owns one side's fleet: placement validation, attack resolution and
// occupancy bookkeeping. It does not guard against re-attacking a cell;
// that is the attacker history's job.
type Board struct {
	ships    []*Ship
	runs     map[*Ship][]model.Position
	occupied map[model.Position]*Ship
	missed   []model.Position
	hits     []model.Position
}

// New creates an empty board
func New() *Board {
	return &Board{
		runs:     make(map[*Ship][]model.Position),
		occupied: make(map[model.Position]*Ship),
	}
}

// PlaceShip places an unnamed ship of the given length
func (b *Board) PlaceShip(length int, origin model.Position, direction model.Direction) (*Ship, error) {
	return b.PlaceNamedShip("", length, origin, direction)
}

// PlaceNamedShip validates and places a ship. Checks run in order: origin in
// bounds, whole run in bounds, no run cell or neighbour already occupied.
// On any failure the board is left untouched.
func (b *Board) PlaceNamedShip(class string, length int, origin model.Position, direction model.Direction) (*Ship, error) {
	if length <= 0 {
		return nil, model.ErrInvalidShipLength
	}
	if !direction.IsValid() {
		return nil, fmt.Errorf("%w: %q", model.ErrInvalidDirection, direction)
	}
	if !origin.IsValid() {
		return nil, fmt.Errorf("%w: origin %s", model.ErrOutOfBounds, origin)
	}

	if length > model.GridSize || !direction.Step(origin, length-1).IsValid() {
		return nil, fmt.Errorf("%w: ship of length %d from %s runs off the grid", model.ErrOutOfBounds, length, origin)
	}

	run := make([]model.Position, length)
	for i := 0; i < length; i++ {
		run[i] = direction.Step(origin, i)
	}

	for _, pos := range run {
		if b.touchesOccupied(pos) {
			return nil, fmt.Errorf("%w: at %s", model.ErrAdjacencyConflict, pos)
		}
	}

	ship := newShip(class, length)
	b.ships = append(b.ships, ship)
	b.runs[ship] = run
	for _, pos := range run {
		b.occupied[pos] = ship
	}
	return ship, nil
}

// touchesOccupied reports whether pos or any of its 8 neighbours holds a ship
func (b *Board) touchesOccupied(pos model.Position) bool {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if _, ok := b.occupied[model.Position{Row: pos.Row + dr, Col: pos.Col + dc}]; ok {
				return true
			}
		}
	}
	return false
}

// ReceiveAttack resolves a shot at pos. A hit is recorded on the ship;
// a miss is appended to the missed list (duplicates included).
// Bounds are the caller's contract.
func (b *Board) ReceiveAttack(pos model.Position) bool {
	if ship, ok := b.occupied[pos]; ok {
		ship.hit()
		b.hits = append(b.hits, pos)
		return true
	}
	b.missed = append(b.missed, pos)
	return false
}

// AllShipsSunk returns true iff at least one ship exists and all are sunk
func (b *Board) AllShipsSunk() bool {
	if len(b.ships) == 0 {
		return false
	}
	for _, ship := range b.ships {
		if !ship.IsSunk() {
			return false
		}
	}
	return true
}

// ShipCoordinates returns the run of the given ship, or nil if unknown
func (b *Board) ShipCoordinates(ship *Ship) []model.Position {
	run, ok := b.runs[ship]
	if !ok {
		return nil
	}
	out := make([]model.Position, len(run))
	copy(out, run)
	return out
}

// IsShipAt returns true if a ship occupies pos
func (b *Board) IsShipAt(pos model.Position) bool {
	_, ok := b.occupied[pos]
	return ok
}

// ShipAt returns the ship occupying pos, or nil
func (b *Board) ShipAt(pos model.Position) *Ship {
	return b.occupied[pos]
}

// Ships returns the placed ships in placement order
func (b *Board) Ships() []*Ship {
	out := make([]*Ship, len(b.ships))
	copy(out, b.ships)
	return out
}

// ShipCount returns the number of placed ships
func (b *Board) ShipCount() int {
	return len(b.ships)
}

// ShipsRemaining returns the number of ships still afloat
func (b *Board) ShipsRemaining() int {
	count := 0
	for _, ship := range b.ships {
		if !ship.IsSunk() {
			count++
		}
	}
	return count
}

// MissedAttacks returns missed shots in the order they arrived
func (b *Board) MissedAttacks() []model.Position {
	out := make([]model.Position, len(b.missed))
	copy(out, b.missed)
	return out
}

// HitAttacks returns hits in the order they arrived
func (b *Board) HitAttacks() []model.Position {
	out := make([]model.Position, len(b.hits))
	copy(out, b.hits)
	return out
}

// Occupied returns every occupied cell in row-major order
func (b *Board) Occupied() []model.Position {
	out := make([]model.Position, 0, len(b.occupied))
	for pos := range b.occupied {
		out = append(out, pos)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index() < out[j].Index() })
	return out
}
