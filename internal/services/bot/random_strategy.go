package bot

import (
	"errors"
	"fmt"

	"github.com/mcoot/battleship-go2/internal/dependencies/random"
	"github.com/mcoot/battleship-go2/internal/model"
	"github.com/mcoot/battleship-go2/internal/services/board"
	"github.com/mcoot/battleship-go2/internal/services/match"
)

const (
	// MaxShipAttempts bounds the random origins tried for one ship before the layout restarts
	MaxShipAttempts = 200
	// MaxFleetAttempts bounds the number of layouts started from an empty board
	MaxFleetAttempts = 20
)

// RandomStrategy places each ship at a random origin and direction
type RandomStrategy struct {
	random random.Random
}

var _ match.FleetPlanner = (*RandomStrategy)(nil)

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

// PlanFleet lays out the fleet longest ship first, starting over on an
// empty board whenever a ship cannot be fitted
func (s *RandomStrategy) PlanFleet() ([]model.Placement, error) {
	for i := 0; i < MaxFleetAttempts; i++ {
		if placements, ok := s.tryFleet(); ok {
			return placements, nil
		}
	}
	return nil, fmt.Errorf("%w: no layout after %d attempts", model.ErrFleetPlacementFailed, MaxFleetAttempts)
}

func (s *RandomStrategy) tryFleet() ([]model.Placement, bool) {
	b := board.New()
	placements := make([]model.Placement, 0, len(model.Fleet()))

	for _, class := range model.Fleet() {
		placement, ok := s.tryShip(b, class)
		if !ok {
			return nil, false
		}
		placements = append(placements, placement)
	}
	return placements, true
}

func (s *RandomStrategy) tryShip(b *board.Board, class model.ShipClass) (model.Placement, bool) {
	for i := 0; i < MaxShipAttempts; i++ {
		direction := model.DirectionHorizontal
		maxRow, maxCol := model.GridSize, model.GridSize-class.Length+1
		if s.random.Intn(2) == 1 {
			direction = model.DirectionVertical
			maxRow, maxCol = model.GridSize-class.Length+1, model.GridSize
		}
		origin := model.Position{Row: s.random.Intn(maxRow), Col: s.random.Intn(maxCol)}

		_, err := b.PlaceNamedShip(class.Name, class.Length, origin, direction)
		if err == nil {
			return model.Placement{
				Class:     class.Name,
				Length:    class.Length,
				Origin:    origin,
				Direction: direction,
			}, true
		}
		if !errors.Is(err, model.ErrAdjacencyConflict) {
			return model.Placement{}, false
		}
	}
	return model.Placement{}, false
}
