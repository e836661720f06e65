package pages

import (
	"context"

	"github.com/a-h/templ"

	"github.com/mcoot/battleship-go2/internal/model"
	"github.com/mcoot/battleship-go2/internal/web/templates/components"
	"github.com/mcoot/battleship-go2/internal/web/templates/html"
	"github.com/mcoot/battleship-go2/internal/web/templates/layout"
)

// MatchData is the data for the match page
type MatchData struct {
	layout.PageData
	MatchID     model.MatchID
	Phase       model.Phase
	CurrentTurn model.Side
	Winner      model.Winner
	Commitment  *model.FleetCommitment

	Own        components.BoardData
	Enemy      components.BoardData
	OwnFleet   []components.ShipStatus
	EnemyFleet []components.ShipStatus
	Remaining  []model.ShipClass
	Log        []model.AttackRecord
}

// reloads the page whenever the match changes elsewhere
const liveScript = `<script>
(function () {
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  var ws = new WebSocket(proto + location.host + location.pathname + "/events");
  ws.onmessage = function (msg) {
    var event = JSON.parse(msg.data);
    if (event.type === "match_deleted") { location.href = "/"; return; }
    if (event.type !== "connected") { location.reload(); }
  };
})();
</script>
`

// Match renders both boards and the controls for the current phase
func Match(data MatchData) templ.Component {
	body := html.Component(func(ctx context.Context, hw *html.Writer) {
		hw.Printf("<h1>Match <code>%s</code></h1>\n", data.MatchID)

		hw.Printf("<p id=\"match-status\" data-phase=\"%s\" data-turn=\"%s\">", data.Phase, data.CurrentTurn)
		switch {
		case data.Phase == model.PhaseOver && data.Winner == model.WinnerTie:
			hw.Raw("Match over: it's a tie.")
		case data.Phase == model.PhaseOver && data.Winner == model.WinnerHuman:
			hw.Raw("Match over: you win!")
		case data.Phase == model.PhaseOver:
			hw.Raw("Match over: the computer wins.")
		case data.Phase == model.PhaseSetup && len(data.Remaining) > 0:
			hw.Raw("Place your fleet.")
		case data.CurrentTurn == model.SideHuman:
			hw.Raw("Your turn. Fire at the enemy waters.")
		default:
			hw.Raw("The computer is taking its turn.")
		}
		hw.Raw("</p>\n")

		if data.Commitment != nil {
			hw.Printf("<p id=\"commitment\">Computer fleet commitment: <code class=\"root\">%s</code>", data.Commitment.Root)
			if data.Commitment.Salt != "" {
				hw.Printf(" salt: <code class=\"salt\">%s</code>", data.Commitment.Salt)
			}
			hw.Raw("</p>\n")
		}

		hw.Raw("<div class=\"boards\">\n<div>\n")
		hw.Render(ctx, components.Board(data.Own))
		hw.Render(ctx, components.FleetStatus("fleet-human", data.OwnFleet))
		hw.Raw("</div>\n<div>\n")
		hw.Render(ctx, components.Board(data.Enemy))
		hw.Render(ctx, components.FleetStatus("fleet-computer", data.EnemyFleet))
		hw.Raw("</div>\n</div>\n")

		if data.Phase == model.PhaseSetup {
			hw.Render(ctx, components.SetupControls(data.MatchID, data.Remaining))
		}

		if len(data.Log) > 0 {
			hw.Raw("<h2>Log</h2>\n<ol id=\"attack-log\">\n")
			for _, entry := range data.Log {
				switch {
				case entry.Exhausted:
					hw.Printf("<li class=\"pass\">%s had no target left and passed</li>\n", entry.Side)
				case entry.Hit:
					hw.Printf("<li class=\"hit\">%s fired at %s: hit</li>\n", entry.Side, entry.Position)
				default:
					hw.Printf("<li class=\"miss\">%s fired at %s: miss</li>\n", entry.Side, entry.Position)
				}
			}
			hw.Raw("</ol>\n")
		}

		hw.Render(ctx, components.MatchActions(data.MatchID))
		hw.Raw(liveScript)
	})
	return layout.Base(data.PageData, body)
}
