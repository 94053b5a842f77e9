package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/storyspark/storyspark-api/internal/api/shared"
)

// NewRecoverer returns middleware that catches panics from downstream
// handlers, logs the stack, and responds with a generic JSON error body.
// The stack trace stays in the logs; clients only ever see the generic
// message.
func NewRecoverer(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						// The connection is gone; nothing useful to write.
						panic(rec)
					}

					logger.Error("panic recovered in HTTP handler",
						slog.String("trace_id", shared.GetTraceID(r.Context())),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
						slog.Any("panic", rec),
						slog.String("stack", string(debug.Stack())))

					shared.RespondWithError(w, r, http.StatusInternalServerError,
						"An internal server error occurred")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
