package middleware

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"restaurant-ops/pkg/utils"
)

// Recover turns a handler panic into a 500 envelope.
func Recover(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				// http.ErrAbortHandler is the server's own abort signal
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger.Error("handler panicked",
					zap.String("panic", fmt.Sprint(rec)),
					zap.String("request_id", GetRequestID(r.Context())),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Stack("stack"),
				)
				utils.ResponseInternalError(w, "Internal server error", nil)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
