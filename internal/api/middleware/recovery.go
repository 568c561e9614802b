package middleware

import (
	"log/slog"
	"net/http"

	"github.com/hexforge/catan-go/internal/api/apierr"
	"github.com/hexforge/catan-go/internal/middleware"
)

// JSONRecovery recovers from panics and writes the API error envelope
// instead of the generic plain-text 500.
func JSONRecovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, func(w http.ResponseWriter, r *http.Request, _ any) {
		apierr.WriteError(w, apierr.NewInternalError())
	})
}
