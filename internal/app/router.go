package app

import (
	"github.com/guttosm/laundry-pricing/config"
	"github.com/guttosm/laundry-pricing/internal/http"
	"github.com/guttosm/laundry-pricing/internal/middleware"
	"github.com/rs/zerolog/log"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter builds the handlers and router configuration.
// dbComponents may be nil.
func InitializeRouter(services *ServiceComponents, dbComponents *DatabaseComponents, cfg config.Config) *RouterComponents {
	opts := []http.HandlerOption{
		http.WithBaseURL(cfg.Server.BaseURL),
		http.WithVersion(cfg.Server.Version),
	}
	if dbComponents != nil {
		opts = append(opts, http.WithAuditTrail(dbComponents.LoggingService))
	}

	// Keep the interface nil when receipts are off; a typed nil would
	// register the receipt routes.
	var handler *http.Handler
	if services.Receipts != nil {
		handler = http.NewHandler(services.Optimizer, services.Receipts, opts...)
	} else {
		handler = http.NewHandler(services.Optimizer, nil, opts...)
	}

	healthHandler := http.NewHealthHandler()
	if services.RendererBreaker != nil {
		healthHandler.RegisterCircuitBreaker("pdf_renderer", services.RendererBreaker)
	}

	routerCfg := http.RouterConfig{
		RequestTimeout:   cfg.Server.RequestTimeout,
		IdempotencyCache: middleware.NewIdempotencyCache(middleware.IdempotencyKeyTTL, 0),
		CORSOrigins:      append(append([]string(nil), http.DefaultCORSOrigins...), cfg.Server.CORSOrigins...),
		SwaggerUser:      cfg.Server.SwaggerUser,
		SwaggerPass:      cfg.Server.SwaggerPass,
	}
	if cfg.Server.RateLimit > 0 {
		routerCfg.RateLimiter = middleware.NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateWindow)
	}

	if cfg.Auth.Enabled {
		routerCfg.APIKeys = middleware.ParseAPIKeys(cfg.Auth.APIKeys)
		if routerCfg.APIKeys.Len() == 0 {
			log.Warn().Msg("AUTH_ENABLED is set but API_KEYS is empty; the API is open")
		}
	}

	if dbComponents != nil {
		routerCfg.LogSink = dbComponents.AsyncLogger
		healthHandler.RegisterChecker("mongodb", http.HealthCheckFunc(dbComponents.HealthCheck))
		healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}

// Stop ends the router's background cleanup loops.
func (r *RouterComponents) Stop() {
	if r.Config.RateLimiter != nil {
		r.Config.RateLimiter.Stop()
	}
	if r.Config.IdempotencyCache != nil {
		r.Config.IdempotencyCache.Stop()
	}
}
