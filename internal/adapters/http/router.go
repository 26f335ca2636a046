package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/quotedroplet/droplet/internal/adapters/http/handlers"
	"github.com/quotedroplet/droplet/internal/adapters/http/middleware"
	"github.com/quotedroplet/droplet/internal/platform/telemetry"
)

// DefaultRequestTimeout is the default deadline for API requests.
const DefaultRequestTimeout = 30 * time.Second

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// ServiceName names the service in traces.
	ServiceName string

	// HealthHandler serves the /-/ endpoints. Optional.
	HealthHandler *handlers.HealthHandler

	// QuoteHandler serves /api/v1. Optional.
	QuoteHandler *handlers.QuoteHandler

	// Timeout is the deadline for /api/v1 requests. Zero disables it.
	Timeout time.Duration
}

// SetupRouter configures middleware and routes on the Gin engine.
// Middleware order (first to last):
//  1. Recovery
//  2. Request ID and correlation ID, so every later log line carries them
//  3. Tracing and request metrics
//  4. Logging (skips /-/)
//  5. Timeout (only /api/v1)
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.TracingMiddleware(cfg.ServiceName),
		telemetry.Middleware(),
		middleware.Logging(),
	)

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	apiV1 := engine.Group("/api/v1")
	apiV1.Use(middleware.Timeout(cfg.Timeout))

	if cfg.QuoteHandler != nil {
		cfg.QuoteHandler.RegisterQuoteRoutes(apiV1)
	}
}

// NewDefaultRouterConfig creates a RouterConfig with the default timeout.
func NewDefaultRouterConfig(serviceName string, health *handlers.HealthHandler, quotes *handlers.QuoteHandler) RouterConfig {
	return RouterConfig{
		ServiceName:   serviceName,
		HealthHandler: health,
		QuoteHandler:  quotes,
		Timeout:       DefaultRequestTimeout,
	}
}
