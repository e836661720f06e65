package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/mcoot/battleship-go2/internal/middleware"
	"github.com/mcoot/battleship-go2/internal/web/templates/html"
	"github.com/mcoot/battleship-go2/internal/web/templates/layout"
)

// Logging logs every page request under the "web" component
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Logging(logger.With(slog.String("component", "web")))
}

// Recovery answers a panicking page handler with the site's error page
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger.With(slog.String("component", "web")), renderPanicPage)
}

var panicPage = layout.Base(
	layout.PageData{
		Title: "Error",
		Flash: &layout.FlashMessage{Type: "error", Message: "Something went wrong. Please try again."},
	},
	html.Component(func(_ context.Context, hw *html.Writer) {
		hw.Raw("<h1>Internal Server Error</h1>\n<p><a href=\"/\">Back to your matches</a></p>\n")
	}),
)

func renderPanicPage(w http.ResponseWriter, r *http.Request, _ any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_ = panicPage.Render(r.Context(), w)
}
