package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"trendmint/internal/logger"

	"github.com/getsentry/sentry-go"
)

// Recovery converts handler panics into a captured Sentry event and a plain
// 500. The Telegram update loop carries its own recover; this guards only
// the ops mux.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("ops: handler panic", map[string]interface{}{
					"method": r.Method, "path": r.URL.Path,
					"error": fmt.Sprintf("%v", err), "stack": string(debug.Stack()),
				})
				hub := sentry.GetHubFromContext(r.Context())
				if hub == nil {
					hub = sentry.CurrentHub().Clone()
				}
				hub.WithScope(func(scope *sentry.Scope) {
					scope.SetTag("endpoint", r.URL.Path)
					scope.SetTag("method", r.Method)
					scope.SetLevel(sentry.LevelFatal)
					hub.RecoverWithContext(r.Context(), err)
				})
				hub.Flush(2 * time.Second)
				http.Error(w, "Internal server error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
