package attack

import (
	"fmt"

	"github.com/mcoot/battleship-go2/internal/dependencies/random"
	"github.com/mcoot/battleship-go2/internal/model"
)

// History is one side's record of the cells it has fired at.
//
// The cells not yet fired at are kept in an explicit slice with an index so
// random targeting can draw uniformly with a single Intn call, and manual
// attacks can remove their cell in constant time.
type History struct {
	random    random.Random
	attacks   []model.Position
	attacked  map[model.Position]bool
	remaining []model.Position
	slot      map[model.Position]int // position -> index into remaining
}

// NewHistory creates an empty history covering the full grid
func NewHistory(rnd random.Random) *History {
	all := model.AllPositions()
	slot := make(map[model.Position]int, len(all))
	for i, pos := range all {
		slot[pos] = i
	}
	return &History{
		random:    rnd,
		attacked:  make(map[model.Position]bool, model.CellCount),
		remaining: all,
		slot:      slot,
	}
}

// RecordAttack adds a caller-chosen target to the history
func (h *History) RecordAttack(pos model.Position) (model.Position, error) {
	if !pos.IsValid() {
		return model.Position{}, fmt.Errorf("%w: %s", model.ErrOutOfBounds, pos)
	}
	if h.attacked[pos] {
		return model.Position{}, fmt.Errorf("%w: %s", model.ErrAlreadyAttacked, pos)
	}
	h.record(pos)
	return pos, nil
}

// RandomLegalAttack picks a cell uniformly among those not yet attacked,
// records it and returns it. ok is false once every cell has been used.
func (h *History) RandomLegalAttack() (pos model.Position, ok bool) {
	if len(h.remaining) == 0 {
		return model.Position{}, false
	}
	pos = h.remaining[h.random.Intn(len(h.remaining))]
	h.record(pos)
	return pos, true
}

// HasAttacked returns true if pos is in the history
func (h *History) HasAttacked(pos model.Position) bool {
	return h.attacked[pos]
}

// Count returns the number of recorded attacks
func (h *History) Count() int {
	return len(h.attacks)
}

// Exhausted returns true once every cell of the grid has been attacked
func (h *History) Exhausted() bool {
	return len(h.remaining) == 0
}

// Attacks returns the recorded attacks in order
func (h *History) Attacks() []model.Position {
	out := make([]model.Position, len(h.attacks))
	copy(out, h.attacks)
	return out
}

// record moves pos from remaining into the history (swap-remove)
func (h *History) record(pos model.Position) {
	idx := h.slot[pos]
	last := len(h.remaining) - 1
	moved := h.remaining[last]
	h.remaining[idx] = moved
	h.slot[moved] = idx
	h.remaining = h.remaining[:last]
	delete(h.slot, pos)

	h.attacked[pos] = true
	h.attacks = append(h.attacks, pos)
}
