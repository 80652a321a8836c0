package middleware

import (
	"net/http"

	"waste-pickup/pkg/utils"

	"go.uber.org/zap"
)

// Recover middleware turns a panic into a 500 JSON response when nothing
// has been written yet
func Recover(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := wrapResponseWriter(w)
			defer func() {
				if err := recover(); err != nil {
					if err == http.ErrAbortHandler {
						panic(err)
					}

					requestID, _ := utils.GetRequestIDFromContext(r.Context())
					logger.Error("PANIC recovered",
						zap.Any("error", err),
						zap.String("request_id", requestID),
						zap.String("path", r.URL.Path),
						zap.String("method", r.Method),
						zap.Stack("stack"),
					)

					// headers already sent
					if rw.wroteHeader {
						return
					}
					utils.ResponseInternalError(rw, "Internal server error")
				}
			}()
			next.ServeHTTP(rw, r)
		})
	}
}
