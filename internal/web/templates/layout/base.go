package layout

import (
	"context"

	"github.com/a-h/templ"

	"github.com/mcoot/battleship-go2/internal/web/templates/html"
)

// FlashMessage is a one-shot notice shown at the top of the next page
type FlashMessage struct {
	Type    string // "success", "error", "info"
	Message string
}

// PageData is shared by every page
type PageData struct {
	Title string
	Flash *FlashMessage
}

const styles = `
body { font-family: system-ui, sans-serif; margin: 0 auto; max-width: 960px; padding: 1rem; }
nav a { font-weight: bold; text-decoration: none; }
.flash { padding: .5rem 1rem; border-radius: 4px; margin: 1rem 0; }
.flash-error { background: #fdd; } .flash-success { background: #dfd; } .flash-info { background: #def; }
.boards { display: flex; gap: 2rem; flex-wrap: wrap; }
table.grid { border-collapse: collapse; }
table.grid td, table.grid th { width: 2rem; height: 2rem; text-align: center; border: 1px solid #9ab; padding: 0; }
td.cell.water { background: #cde; } td.cell.ship { background: #789; }
td.cell.miss { background: #eef; } td.cell.hit { background: #e66; } td.cell.sunk { background: #922; }
td.cell form { margin: 0; } td.cell button { width: 100%; height: 2rem; border: 0; background: transparent; cursor: crosshair; }
`

// Base wraps body in the site chrome
func Base(data PageData, body templ.Component) templ.Component {
	return html.Component(func(ctx context.Context, hw *html.Writer) {
		title := "Battleship"
		if data.Title != "" {
			title = data.Title + " - Battleship"
		}

		hw.Raw("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n")
		hw.Printf("<title>%s</title>\n", title)
		hw.Raw("<style>" + styles + "</style>\n</head>\n<body>\n")
		hw.Raw("<nav><a href=\"/\">Battleship</a></nav>\n")
		if data.Flash != nil {
			hw.Printf("<div class=\"flash flash-%s\" id=\"flash\">%s</div>\n", data.Flash.Type, data.Flash.Message)
		}
		hw.Raw("<main>\n")
		hw.Render(ctx, body)
		hw.Raw("</main>\n</body>\n</html>\n")
	})
}
