package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/battleship-go2/internal/api/response"
	"github.com/mcoot/battleship-go2/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.Health:
		fmt.Fprintf(o.w, "Status: %s\n", v.Status)
	case response.Match:
		o.printMatch(v)
	case response.MatchList:
		o.printMatchList(v)
	case response.AttackResponse:
		o.printOutcome(v.Outcome)
		fmt.Fprintln(o.w)
		o.printMatch(v.Match)
	case response.ComputerTurnsResponse:
		if len(v.Outcomes) == 0 {
			fmt.Fprintln(o.w, "The computer has nothing to do.")
		}
		for _, outcome := range v.Outcomes {
			o.printOutcome(outcome)
		}
		fmt.Fprintln(o.w)
		o.printMatch(v.Match)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printMatchList(l response.MatchList) {
	if len(l.Matches) == 0 {
		fmt.Fprintln(o.w, "No matches")
		return
	}
	for _, m := range l.Matches {
		status := string(m.Phase)
		if m.Winner != model.WinnerNone {
			status += ", winner " + string(m.Winner)
		} else {
			status += ", " + string(m.CurrentTurn) + " to play"
		}
		fmt.Fprintf(o.w, "%s  %s  (updated %s)\n", m.ID, status, m.UpdatedAt.Format("2006-01-02 15:04:05"))
	}
}

func (o *Output) printOutcome(out model.Outcome) {
	if out.Exhausted {
		fmt.Fprintf(o.w, "%s had no target left and passed\n", out.Side)
	} else {
		result := "miss"
		if out.Hit {
			result = "hit"
		}
		line := fmt.Sprintf("%s fired at %s: %s", out.Side, out.Position, result)
		if out.Sunk != "" {
			line += ", sank the " + out.Sunk
		}
		fmt.Fprintln(o.w, line)
	}
	if out.GameOver {
		fmt.Fprintf(o.w, "Match over, winner: %s\n", out.Winner)
	}
}

func (o *Output) printMatch(m response.Match) {
	fmt.Fprintf(o.w, "Match: %s\n", m.ID)
	fmt.Fprintf(o.w, "Phase: %s\n", m.Phase)
	if m.Over {
		fmt.Fprintf(o.w, "Winner: %s\n", m.Winner)
	} else {
		fmt.Fprintf(o.w, "Turn: %s\n", m.CurrentTurn)
	}
	if m.Commitment != nil {
		fmt.Fprintf(o.w, "Commitment: %s\n", m.Commitment.Root)
		if m.Commitment.Salt != "" {
			fmt.Fprintf(o.w, "Salt: %s\n", m.Commitment.Salt)
		}
	}

	for _, b := range []response.Board{m.Human, m.Computer} {
		fmt.Fprintf(o.w, "\n%s board (%d ships afloat):\n", b.Side, b.ShipsRemaining)
		o.printBoard(b)
		if len(b.RemainingFleet) > 0 {
			names := make([]string, 0, len(b.RemainingFleet))
			for _, class := range b.RemainingFleet {
				names = append(names, fmt.Sprintf("%s (%d)", class.Name, class.Length))
			}
			fmt.Fprintf(o.w, "Still to place: %s\n", strings.Join(names, ", "))
		}
	}
}

// boardGrid lays a board out as S ship, X hit, o miss and . water
func boardGrid(b response.Board) [model.GridSize][model.GridSize]byte {
	var grid [model.GridSize][model.GridSize]byte
	for r := range grid {
		for c := range grid[r] {
			grid[r][c] = '.'
		}
	}
	for _, ship := range b.Ships {
		for _, p := range ship.Cells {
			grid[p.Row][p.Col] = 'S'
		}
	}
	for _, p := range b.Misses {
		grid[p.Row][p.Col] = 'o'
	}
	for _, p := range b.Hits {
		grid[p.Row][p.Col] = 'X'
	}
	return grid
}

func (o *Output) printBoard(b response.Board) {
	grid := boardGrid(b)

	// Print column headers
	fmt.Fprint(o.w, "    ")
	for col := 0; col < model.GridSize; col++ {
		fmt.Fprintf(o.w, "%d ", col)
	}
	fmt.Fprintln(o.w)

	for row := 0; row < model.GridSize; row++ {
		fmt.Fprintf(o.w, " %d  ", row)
		for col := 0; col < model.GridSize; col++ {
			fmt.Fprintf(o.w, "%c ", grid[row][col])
		}
		fmt.Fprintln(o.w)
	}
}
