// Package main is the entry point for the laundry pricing service.
//
// @title           Laundry Pricing API
// @version         2.0.1
// @description     Prices ironing orders at the lowest total cost using mixed and shirt pack deals, and issues PDF receipts.
//
// @contact.name   API Support
// @contact.url    https://github.com/guttosm/laundry-pricing
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @tag.name        Quotes
// @tag.description Order pricing and catalog
//
// @tag.name        Receipts
// @tag.description Issued receipts and PDF downloads
//
// @tag.name        Service
// @tag.description Service information
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"time"

	"github.com/guttosm/laundry-pricing/config"
	"github.com/guttosm/laundry-pricing/docs"
	"github.com/guttosm/laundry-pricing/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()
	docs.SwaggerInfo.Version = cfg.Server.Version

	a, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}

	server := app.NewServer(a.Router, cfg.Server.Port,
		app.WithShutdownTimeout(cfg.Server.ShutdownGrace),
		// PDF downloads may take the whole request timeout.
		app.WithWriteTimeout(cfg.Server.RequestTimeout+15*time.Second),
		app.OnShutdown(a.Close),
	)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
