package app

import (
	"fmt"

	"github.com/guttosm/laundry-pricing/config"
	"github.com/guttosm/laundry-pricing/internal/catalog"
	"github.com/guttosm/laundry-pricing/internal/circuitbreaker"
	"github.com/guttosm/laundry-pricing/internal/domain/model"
	"github.com/guttosm/laundry-pricing/internal/receipt"
	"github.com/guttosm/laundry-pricing/internal/service"
	"github.com/rs/zerolog/log"
)

// receiptStoreShards spreads receipt locks; the store is small.
const receiptStoreShards = 16

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Catalog   *model.PricingCatalog
	Optimizer *service.QuoteOptimizerService
	// Receipts is nil when receipts are disabled.
	Receipts        *service.ReceiptServiceImpl
	ReceiptStore    *service.ReceiptStore
	RendererBreaker *circuitbreaker.CircuitBreaker
}

// InitializeServices builds the optimizer and, unless disabled, the receipt
// service with its store and PDF renderer. It fails only when a configured
// catalog file cannot be loaded.
func InitializeServices(cfg config.Config) (*ServiceComponents, error) {
	cat, err := loadCatalog(cfg.Pricing)
	if err != nil {
		return nil, err
	}

	components := &ServiceComponents{
		Catalog:   cat,
		Optimizer: service.NewQuoteOptimizerService(service.WithCatalog(cat)),
	}

	rc := cfg.Receipts
	if !rc.Enabled {
		log.Info().Msg("Receipts disabled")
		return components, nil
	}

	components.ReceiptStore = service.NewReceiptStore(rc.CacheSize, rc.TTL, rc.SweepInterval, receiptStoreShards)
	components.RendererBreaker = circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: rc.CircuitBreakerFailureThreshold,
		Timeout:          rc.CircuitBreakerTimeout,
		Name:             "pdf-renderer",
	})

	printer := receipt.NewChromePrinter(rc.ChromePath, rc.RenderTimeout)
	renderer := receipt.NewPDFRenderer(cat, printer, rc.LogoPath)

	components.Receipts = service.NewReceiptService(components.ReceiptStore, renderer, components.RendererBreaker, service.ReceiptConfig{
		TTL:        rc.TTL,
		SigningKey: rc.SigningKey,
	})

	return components, nil
}

// Stop ends background work owned by the services.
func (c *ServiceComponents) Stop() {
	if c.ReceiptStore != nil {
		c.ReceiptStore.Stop()
	}
}

func loadCatalog(cfg config.PricingConfig) (*model.PricingCatalog, error) {
	if cfg.CatalogFile == "" {
		return catalog.Default(), nil
	}
	cat, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", cfg.CatalogFile, err)
	}
	log.Info().Str("file", cfg.CatalogFile).Str("version", cat.Version).Msg("Catalog loaded")
	return cat, nil
}
