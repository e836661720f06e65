package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/battleship-go2/internal/api/response"
	"github.com/mcoot/battleship-go2/internal/model"
)

func TestBoardGrid(t *testing.T) {
	b := response.Board{
		Ships: []response.Ship{{
			Class: "Destroyer",
			Cells: []model.Position{{Row: 2, Col: 3}, {Row: 2, Col: 4}},
		}},
		Hits:   []model.Position{{Row: 2, Col: 4}},
		Misses: []model.Position{{Row: 0, Col: 0}},
	}

	grid := boardGrid(b)

	assert.Equal(t, byte('o'), grid[0][0])
	assert.Equal(t, byte('S'), grid[2][3])
	assert.Equal(t, byte('X'), grid[2][4])
	assert.Equal(t, byte('.'), grid[9][9])
}

func TestPrintOutcome(t *testing.T) {
	tests := []struct {
		name    string
		outcome model.Outcome
		want    string
	}{
		{
			name:    "miss",
			outcome: model.Outcome{Side: model.SideHuman, Position: model.Position{Row: 1, Col: 2}},
			want:    "human fired at (1,2): miss\n",
		},
		{
			name: "sinking shot ends the match",
			outcome: model.Outcome{
				Side:     model.SideComputer,
				Position: model.Position{Row: 8, Col: 6},
				Hit:      true,
				Sunk:     "Destroyer",
				GameOver: true,
				Winner:   model.WinnerComputer,
			},
			want: "computer fired at (8,6): hit, sank the Destroyer\nMatch over, winner: computer\n",
		},
		{
			name:    "exhausted",
			outcome: model.Outcome{Side: model.SideComputer, Exhausted: true, TurnSwitched: true},
			want:    "computer had no target left and passed\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewOutput("text", &buf).printOutcome(tt.outcome)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrintMessage_JSON(t *testing.T) {
	var buf bytes.Buffer
	NewOutput("json", &buf).PrintMessage("Match deleted")
	assert.JSONEq(t, `{"message":"Match deleted"}`, buf.String())
}

func TestWebsocketURL(t *testing.T) {
	assert.Equal(t, "ws://localhost:8080/matches/m1/events",
		NewClient("http://localhost:8080/").WebsocketURL("/matches/m1/events"))
	assert.Equal(t, "wss://example.com/matches/m1/events",
		NewClient("https://example.com").WebsocketURL("/matches/m1/events"))
}

func TestRevealedFleet(t *testing.T) {
	m := response.Match{
		ID:         "m1",
		Commitment: &model.FleetCommitment{Root: "abc"},
	}

	_, err := revealedFleet(m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not over")

	m.Over = true
	_, err = revealedFleet(m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no revealed commitment")

	m.Commitment.Salt = "01"
	m.Computer.Ships = []response.Ship{
		{Cells: []model.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}}},
		{Cells: []model.Position{{Row: 5, Col: 5}}},
	}
	occupied, err := revealedFleet(m)
	require.NoError(t, err)
	assert.Len(t, occupied, 3)
}

func TestParseInts(t *testing.T) {
	nums, err := parseInts([]string{"3", "7"}, "row", "col")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 7}, nums)

	_, err = parseInts([]string{"3", "x"}, "row", "col")
	require.Error(t, err)
	assert.Equal(t, `col must be a number, got "x"`, err.Error())
}
