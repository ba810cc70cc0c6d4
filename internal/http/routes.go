package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/laundry-pricing/internal/middleware"
)

// RouteGroup defines a group of routes that can be registered.
type RouteGroup interface {
	// RegisterRoutes registers routes to the given router group.
	RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig)
}

// QuoteRoutes serves pricing under the API key guard.
type QuoteRoutes struct {
	handler *Handler
}

// NewQuoteRoutes creates the pricing route group.
func NewQuoteRoutes(handler *Handler) *QuoteRoutes {
	return &QuoteRoutes{handler: handler}
}

// RegisterRoutes implements RouteGroup.
func (r *QuoteRoutes) RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	protected := rg.Group("", protectedMiddleware(cfg)...)
	protected.POST("/optimize", r.handler.Optimize)
	protected.GET("/catalog", r.handler.GetCatalog)
}

// ReceiptRoutes serves receipts. The JSON view needs an API key like the
// rest of the API; the PDF link is authorized by its signed token.
type ReceiptRoutes struct {
	handler *Handler
}

// NewReceiptRoutes creates the receipt route group.
func NewReceiptRoutes(handler *Handler) *ReceiptRoutes {
	return &ReceiptRoutes{handler: handler}
}

// RegisterRoutes implements RouteGroup. Nothing is registered when the
// handler has no receipt service; the history route also needs an audit
// trail.
func (r *ReceiptRoutes) RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	if r.handler.receipts == nil {
		return
	}

	receipts := rg.Group("/receipts")
	receipts.GET("/:id", append(protectedMiddleware(cfg), r.handler.GetReceipt)...)
	receipts.GET("/:id/pdf", middleware.ReceiptToken(r.handler.receipts), r.handler.DownloadReceiptPDF)
	if r.handler.audit != nil {
		receipts.GET("/:id/history", append(protectedMiddleware(cfg), r.handler.ReceiptHistory)...)
	}
}

func protectedMiddleware(cfg *RouterConfig) []gin.HandlerFunc {
	var chain []gin.HandlerFunc
	if cfg.APIKeys.Len() > 0 {
		chain = append(chain, middleware.APIKeyAuth(cfg.APIKeys))
	}
	if cfg.IdempotencyCache != nil {
		chain = append(chain, middleware.Idempotency(cfg.IdempotencyCache))
	}
	return chain
}
