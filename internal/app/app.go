// Package app provides application initialization and dependency injection.
package app

import (
	"context"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/laundry-pricing/config"
	"github.com/guttosm/laundry-pricing/internal/http"
	"github.com/rs/zerolog/log"
)

// App is the wired application: the router plus everything that must be
// stopped when the server shuts down.
type App struct {
	Router *gin.Engine

	closers   []func(ctx context.Context)
	closeOnce sync.Once
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(cfg config.Config) (*App, error) {
	InitializeLogger(cfg.Log)

	services, err := InitializeServices(cfg)
	if err != nil {
		return nil, err
	}

	dbComponents := InitializeDatabase(cfg.Database)

	routerComponents := InitializeRouter(services, dbComponents, cfg)

	a := &App{
		Router: http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config),
	}
	// Closed in reverse: stop taking work, then flush logs, then drop the store.
	a.onClose(func(context.Context) { services.Stop() })
	if dbComponents != nil {
		a.onClose(dbComponents.Close)
	}
	a.onClose(func(context.Context) { routerComponents.Stop() })

	log.Info().
		Str("catalog_version", services.Catalog.Version).
		Bool("receipts", services.Receipts != nil).
		Bool("mongodb", dbComponents != nil).
		Bool("auth", routerComponents.Config.APIKeys.Len() > 0).
		Msg("Application initialized")

	return a, nil
}

func (a *App) onClose(fn func(ctx context.Context)) {
	a.closers = append(a.closers, fn)
}

// Close releases background workers and connections. It is safe to call
// more than once.
func (a *App) Close(ctx context.Context) {
	a.closeOnce.Do(func() {
		for i := len(a.closers) - 1; i >= 0; i-- {
			a.closers[i](ctx)
		}
	})
}
