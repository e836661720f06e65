// Package middleware holds the JSON API's request middleware
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/battleship-go2/internal/api/apierr"
	"github.com/mcoot/battleship-go2/internal/middleware"
)

// Logging logs every API request under the "api" component
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Logging(logger.With(slog.String("component", "api")))
}

// Recovery answers a panicking API handler with an INTERNAL_ERROR body
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger.With(slog.String("component", "api")), func(w http.ResponseWriter, _ *http.Request, _ any) {
		apierr.WriteError(w, apierr.NewInternalError())
	})
}
