package pages

import (
	"context"

	"github.com/a-h/templ"

	"github.com/mcoot/battleship-go2/internal/model"
	"github.com/mcoot/battleship-go2/internal/web/templates/components"
	"github.com/mcoot/battleship-go2/internal/web/templates/html"
	"github.com/mcoot/battleship-go2/internal/web/templates/layout"
)

// HomeData is the data for the home page
type HomeData struct {
	layout.PageData
	Matches []model.MatchSummary
}

// Home lists matches and offers to start a new one
func Home(data HomeData) templ.Component {
	body := html.Component(func(ctx context.Context, hw *html.Writer) {
		hw.Raw("<h1>Battleship</h1>\n")
		hw.Raw("<form id=\"new-match\" method=\"post\" action=\"/matches\"><button type=\"submit\">New match</button></form>\n")
		hw.Raw("<h2>Matches</h2>\n")
		hw.Render(ctx, components.MatchList(data.Matches))
	})
	return layout.Base(data.PageData, body)
}
