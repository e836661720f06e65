package components

import (
	"context"
	"strings"

	"github.com/a-h/templ"

	"github.com/mcoot/battleship-go2/internal/model"
	"github.com/mcoot/battleship-go2/internal/web/templates/html"
)

// CellState is what a viewer is allowed to know about one cell
type CellState string

const (
	CellWater CellState = "water"
	CellShip  CellState = "ship"
	CellMiss  CellState = "miss"
	CellHit   CellState = "hit"
	CellSunk  CellState = "sunk"
)

// Cell is a single rendered grid square
type Cell struct {
	Position  model.Position
	State     CellState
	CanAttack bool
}

// BoardData describes one grid as seen by the viewer
type BoardData struct {
	ID      string // element id, e.g. "board-human"
	Title   string
	MatchID model.MatchID
	Cells   [model.GridSize][model.GridSize]Cell
}

// Board renders a 10x10 grid. Unattacked enemy cells become attack buttons.
func Board(data BoardData) templ.Component {
	return html.Component(func(ctx context.Context, hw *html.Writer) {
		hw.Printf("<section class=\"board\" id=\"%s\">\n<h2>%s</h2>\n", data.ID, data.Title)
		hw.Raw("<table class=\"grid\">\n<tr><th></th>")
		for col := 0; col < model.GridSize; col++ {
			hw.Printf("<th>%s</th>", col)
		}
		hw.Raw("</tr>\n")

		for row := 0; row < model.GridSize; row++ {
			hw.Printf("<tr><th>%s</th>", rowLabel(row))
			for col := 0; col < model.GridSize; col++ {
				cell := data.Cells[row][col]
				hw.Printf("<td class=\"cell %s\" data-row=\"%s\" data-col=\"%s\">", cell.State, row, col)
				if cell.CanAttack {
					hw.Printf("<form class=\"attack\" method=\"post\" action=\"/matches/%s/attack\">", data.MatchID)
					hw.Printf("<input type=\"hidden\" name=\"row\" value=\"%s\">", row)
					hw.Printf("<input type=\"hidden\" name=\"col\" value=\"%s\">", col)
					hw.Printf("<button type=\"submit\" title=\"Fire at %s%s\"></button></form>", rowLabel(row), col)
				} else {
					hw.Raw(cellMark(cell.State))
				}
				hw.Raw("</td>")
			}
			hw.Raw("</tr>\n")
		}
		hw.Raw("</table>\n</section>\n")
	})
}

func rowLabel(row int) string {
	return string(rune('A' + row))
}

func cellMark(state CellState) string {
	switch state {
	case CellHit, CellSunk:
		return "&#10005;"
	case CellMiss:
		return "&#8226;"
	default:
		return ""
	}
}

// ShipStatus is one line of a fleet summary
type ShipStatus struct {
	Class  string
	Length int
	Hits   int
	Sunk   bool
	Hidden bool // damage unknown to the viewer
}

// FleetStatus lists a side's ships and how damaged they are
func FleetStatus(id string, ships []ShipStatus) templ.Component {
	return html.Component(func(ctx context.Context, hw *html.Writer) {
		hw.Printf("<ul class=\"fleet\" id=\"%s\">\n", id)
		for _, s := range ships {
			classes := []string{"ship-status"}
			if s.Sunk {
				classes = append(classes, "sunk")
			}
			if s.Hidden {
				hw.Printf("<li class=\"%s\">%s (%s)</li>\n", strings.Join(classes, " "), s.Class, s.Length)
				continue
			}
			hw.Printf("<li class=\"%s\">%s (%s/%s)</li>\n", strings.Join(classes, " "), s.Class, s.Hits, s.Length)
		}
		hw.Raw("</ul>\n")
	})
}
