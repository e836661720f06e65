package testutil

import "github.com/mcoot/battleship-go2/internal/model"

// StandardFleet lays the full fleet out horizontally on the even rows,
// every ship starting at column col. Columns 0 and 5 both fit.
func StandardFleet(col int) []model.Placement {
	var placements []model.Placement
	for i, class := range model.Fleet() {
		placements = append(placements, model.Placement{
			Class:     class.Name,
			Length:    class.Length,
			Origin:    model.Position{Row: 2 * i, Col: col},
			Direction: model.DirectionHorizontal,
		})
	}
	return placements
}

// FleetCells returns every cell the placements occupy
func FleetCells(placements []model.Placement) []model.Position {
	var cells []model.Position
	for _, p := range placements {
		for i := 0; i < p.Length; i++ {
			cells = append(cells, p.Direction.Step(p.Origin, i))
		}
	}
	return cells
}

// FixedPlanner always plans the same fleet
type FixedPlanner struct {
	Placements []model.Placement
	Err        error
}

func (p *FixedPlanner) PlanFleet() ([]model.Placement, error) {
	if p.Err != nil {
		return nil, p.Err
	}
	return append([]model.Placement(nil), p.Placements...), nil
}

// DrawsFor returns the Intn results that make a fresh attack history pick
// targets in order. The history keeps its untried cells in row-major order and
// swap-removes each pick.
func DrawsFor(targets []model.Position) []int {
	remaining := model.AllPositions()
	draws := make([]int, 0, len(targets))
	for _, target := range targets {
		for i, p := range remaining {
			if p == target {
				draws = append(draws, i)
				last := len(remaining) - 1
				remaining[i] = remaining[last]
				remaining = remaining[:last]
				break
			}
		}
	}
	return draws
}
