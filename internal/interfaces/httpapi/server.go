package httpapi

import (
	"net/http"

	"github.com/riskibarqy/league-dashboard/internal/platform/logging"
	"github.com/riskibarqy/league-dashboard/internal/platform/metrics"
)

// RouterConfig carries the knobs the router needs beyond the handler.
type RouterConfig struct {
	ServiceName        string
	CORSAllowedOrigins []string
	InternalJobToken   string
	SwaggerEnabled     bool
}

func NewRouter(
	handler *Handler,
	verifier TokenVerifier,
	logger *logging.Logger,
	metricsManager *metrics.Manager,
	cfg RouterConfig,
) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	r := &routes{
		mux:      http.NewServeMux(),
		handler:  handler,
		verifier: verifier,
		logger:   logger,
		metrics:  metricsManager,
	}
	r.registerSystemRoutes(cfg.SwaggerEnabled)
	r.registerPublicRoutes()
	r.registerAdminRoutes()
	r.registerInternalJobRoutes(cfg.InternalJobToken)

	return RequestTracing(cfg.ServiceName, RequestLogging(logger, CORS(cfg.CORSAllowedOrigins, recoverPanic(logger, r.mux))))
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
