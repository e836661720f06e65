package components

import (
	"context"

	"github.com/a-h/templ"

	"github.com/mcoot/battleship-go2/internal/model"
	"github.com/mcoot/battleship-go2/internal/web/templates/html"
)

// SetupControls renders the fleet placement forms shown before the first shot
func SetupControls(matchID model.MatchID, remaining []model.ShipClass) templ.Component {
	return html.Component(func(ctx context.Context, hw *html.Writer) {
		hw.Raw("<section id=\"setup-controls\">\n")

		if len(remaining) > 0 {
			hw.Printf("<form id=\"place-ship\" method=\"post\" action=\"/matches/%s/ships\">\n", matchID)
			hw.Raw("<select name=\"length\">")
			for _, c := range remaining {
				hw.Printf("<option value=\"%s\">%s (%s)</option>", c.Length, c.Name, c.Length)
			}
			hw.Raw("</select>\n")
			hw.Printf("<input type=\"number\" name=\"row\" min=\"0\" max=\"%s\" value=\"0\">\n", model.GridSize-1)
			hw.Printf("<input type=\"number\" name=\"col\" min=\"0\" max=\"%s\" value=\"0\">\n", model.GridSize-1)
			hw.Printf("<select name=\"direction\"><option value=\"%s\">horizontal</option><option value=\"%s\">vertical</option></select>\n",
				model.DirectionHorizontal, model.DirectionVertical)
			hw.Raw("<button type=\"submit\">Place ship</button>\n</form>\n")
		}

		hw.Printf("<form id=\"randomize-fleet\" method=\"post\" action=\"/matches/%s/fleet/random\"><button type=\"submit\">Randomize fleet</button></form>\n", matchID)
		hw.Printf("<form id=\"clear-fleet\" method=\"post\" action=\"/matches/%s/fleet/clear\"><button type=\"submit\">Clear fleet</button></form>\n", matchID)
		hw.Raw("</section>\n")
	})
}

// MatchActions renders the controls available for any match
func MatchActions(matchID model.MatchID) templ.Component {
	return html.Component(func(ctx context.Context, hw *html.Writer) {
		hw.Printf("<form id=\"delete-match\" method=\"post\" action=\"/matches/%s/delete\"><button type=\"submit\">Delete match</button></form>\n", matchID)
	})
}

// MatchList renders the known matches with links to each
func MatchList(matches []model.MatchSummary) templ.Component {
	return html.Component(func(ctx context.Context, hw *html.Writer) {
		if len(matches) == 0 {
			hw.Raw("<p id=\"no-matches\">No matches yet.</p>\n")
			return
		}
		hw.Raw("<ul id=\"match-list\">\n")
		for _, m := range matches {
			hw.Printf("<li class=\"match\" data-phase=\"%s\"><a href=\"/matches/%s\">%s</a> %s",
				m.Phase, m.ID, m.ID, m.Phase)
			if m.Winner != model.WinnerNone {
				hw.Printf(" (winner: %s)", m.Winner)
			}
			hw.Raw("</li>\n")
		}
		hw.Raw("</ul>\n")
	})
}
