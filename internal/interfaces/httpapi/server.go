package httpapi

import (
	"net/http"

	"github.com/riskibarqy/football-hub/internal/platform/id"
	"github.com/riskibarqy/football-hub/internal/platform/logging"
)

func NewRouter(
	handler *Handler,
	logger *logging.Logger,
	corsAllowedOrigins []string,
) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler)
	registerProxyRoutes(mux, handler)
	registerPredictionRoutes(mux, handler)
	registerViewRoutes(mux, handler)

	requestIDs := id.NewRandomGenerator("req_")
	return RequestTracing(RequestLogging(logger, RequestID(requestIDs, CORS(corsAllowedOrigins, recoverPanic(logger, mux)))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec, "path", r.URL.Path)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
