package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/laundry-pricing/internal/domain/dto"
	"github.com/guttosm/laundry-pricing/internal/domain/model"
	"github.com/guttosm/laundry-pricing/internal/i18n"
	"github.com/guttosm/laundry-pricing/internal/logger"
	"github.com/guttosm/laundry-pricing/internal/middleware"
	"github.com/guttosm/laundry-pricing/internal/service"
)

// ServiceName is reported by GET /.
const ServiceName = "laundry-pricing"

// Handler serves the pricing and receipt endpoints.
type Handler struct {
	optimizer service.QuoteOptimizer
	receipts  service.ReceiptService
	sink      middleware.LogSink
	audit     service.LoggingService
	baseURL   string
	version   string
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithLogSink sets where audit entries are sent.
func WithLogSink(sink middleware.LogSink) HandlerOption {
	return func(h *Handler) {
		h.sink = sink
	}
}

// WithAuditTrail enables GET /api/receipts/{id}/history, read from the
// persisted audit log.
func WithAuditTrail(logs service.LoggingService) HandlerOption {
	return func(h *Handler) {
		h.audit = logs
	}
}

// WithBaseURL sets the public URL used in receipt links. Without it links
// are built from the request host.
func WithBaseURL(baseURL string) HandlerOption {
	return func(h *Handler) {
		h.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithVersion sets the version reported by GET /.
func WithVersion(version string) HandlerOption {
	return func(h *Handler) {
		h.version = version
	}
}

// NewHandler creates a Handler. receipts may be nil, in which case quotes
// are returned without a receipt link.
func NewHandler(optimizer service.QuoteOptimizer, receipts service.ReceiptService, opts ...HandlerOption) *Handler {
	h := &Handler{
		optimizer: optimizer,
		receipts:  receipts,
		version:   "dev",
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Root handles GET /.
//
// @Summary      Service information
// @Description  Returns the service name, version and the list of endpoints.
// @Tags         Service
// @Produce      json
// @Success      200 {object} dto.ServiceInfo
// @Router       / [get]
func (h *Handler) Root(c *gin.Context) {
	endpoints := map[string]string{
		"optimize": "POST /api/optimize",
		"catalog":  "GET /api/catalog",
		"health":   "GET /healthz",
		"ready":    "GET /readyz",
		"metrics":  "GET /metrics",
		"docs":     "GET /swagger/index.html",
	}
	if h.receipts != nil {
		endpoints["receipt"] = "GET /api/receipts/{id}"
		endpoints["receipt_pdf"] = "GET /api/receipts/{id}/pdf?token=..."
		if h.audit != nil {
			endpoints["receipt_history"] = "GET /api/receipts/{id}/history"
		}
	}

	c.JSON(http.StatusOK, dto.ServiceInfo{
		Service:   ServiceName,
		Version:   h.version,
		Endpoints: endpoints,
	})
}

// Optimize handles POST /api/optimize.
//
// @Summary      Price an order
// @Description  Computes the cheapest combination of mixed packs, shirt packs and loose units for the optimizable items and adds the fixed-price items. The flat legacy body {"shirt": 8, "cliente": "Maria"} is accepted too. When receipts are enabled the response carries a signed PDF link. Supports idempotency via Idempotency-Key header.
// @Tags         Quotes
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        Accept-Language header string false "Message language (en, pt, nl)"
// @Param        request body dto.QuoteRequest true "Order to price"
// @Success      200 {object} dto.SuccessResponse{data=dto.QuoteResponse} "Cheapest quote"
// @Failure      400 {object} dto.ErrorResponse "Unknown item, invalid quantity or order too large"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid API key"
// @Failure      429 {object} dto.ErrorResponse "Rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "No feasible allocation or solver failure"
// @Security     ApiKeyAuth
// @Router       /api/optimize [post]
func (h *Handler) Optimize(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.QuoteRequest](c)
	if err != nil {
		writeRequestError(builder, err)
		return
	}

	quote, err := h.optimizer.Optimize(req.Items)
	if err != nil {
		middleware.AuditLogError(h.sink, c, model.ActionOptimize, "Quote failed", err, map[string]interface{}{
			"kind": service.ErrorKind(err),
		})
		writeQuoteError(builder, err)
		return
	}

	resp := dto.NewQuoteResponse(quote)
	if h.receipts != nil {
		receipt, token, err := h.receipts.Issue(quote, req.ClientName)
		if err != nil {
			log := logger.ForRequest(middleware.GetRequestID(c))
			log.Warn().Err(err).Msg("Quote returned without receipt")
		} else {
			c.Set(string(middleware.ReceiptIDKey), receipt.ID)
			resp = resp.WithReceipt(receipt, h.receipts.PDFURL(h.publicURL(c), receipt, token))
		}
	}

	middleware.AuditLog(h.sink, c, model.ActionOptimize, "Quote calculated", map[string]interface{}{
		"total_cost": quote.TotalCost.String(),
		"items":      len(req.Items),
	})
	builder.SuccessOK(resp)
}

// GetCatalog handles GET /api/catalog.
//
// @Summary      Price list
// @Description  Returns the active catalog: unit prices, mixed and shirt pack tiers and the largest order that can be priced.
// @Tags         Quotes
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.CatalogResponse}
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid API key"
// @Security     ApiKeyAuth
// @Router       /api/catalog [get]
func (h *Handler) GetCatalog(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(dto.NewCatalogResponse(h.optimizer.Catalog()))
}

// publicURL returns the configured base URL or one derived from the request.
func (h *Handler) publicURL(c *gin.Context) string {
	if h.baseURL != "" {
		return h.baseURL
	}
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto == "http" || proto == "https" {
		scheme = proto
	}
	return scheme + "://" + c.Request.Host
}

// writeRequestError answers a body that could not be read as a quote request.
func writeRequestError(b *ResponseBuilder, err error) {
	var validationErr *dto.ValidationError
	if errors.As(err, &validationErr) {
		messageKey := i18n.ErrKeyInvalidRequest
		if errors.Is(err, dto.ErrClientNameTooLong) {
			messageKey = i18n.ErrKeyClientNameTooLong
		}
		b.ErrorWithCode(http.StatusBadRequest, dto.ErrCodeInvalidRequest, messageKey,
			map[string]string{"field": validationErr.Field, "reason": validationErr.Message}, err)
		return
	}
	b.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
}

// writeQuoteError maps optimizer errors to responses. Order errors are the
// caller's fault (400); infeasible or inconsistent solver results are ours (500).
func writeQuoteError(b *ResponseBuilder, err error) {
	var (
		unknown  *service.UnknownItemError
		quantity *service.InvalidQuantityError
		capacity *service.CapacityExceededError
	)

	switch {
	case errors.As(err, &unknown):
		b.ErrorWithCode(http.StatusBadRequest, dto.ErrCodeUnknownItem, i18n.ErrKeyUnknownItem,
			map[string]string{"keys": strings.Join(unknown.Keys, ",")}, err)
	case errors.As(err, &quantity):
		b.ErrorWithCode(http.StatusBadRequest, dto.ErrCodeInvalidQuantity, i18n.ErrKeyInvalidQuantity,
			map[string]string{"key": quantity.Key, "value": fmt.Sprint(quantity.Value), "reason": quantity.Reason}, err)
	case errors.As(err, &capacity):
		b.ErrorWithCode(http.StatusBadRequest, dto.ErrCodeCapacityExceeded, i18n.ErrKeyCapacityExceeded,
			map[string]string{"requested": strconv.Itoa(capacity.Requested), "ceiling": strconv.Itoa(capacity.Ceiling)}, err)
	case errors.Is(err, service.ErrInfeasible):
		b.ErrorWithCode(http.StatusInternalServerError, dto.ErrCodeInfeasible, i18n.ErrKeyInfeasible, nil, err)
	case errors.Is(err, service.ErrSolverData):
		b.ErrorWithCode(http.StatusInternalServerError, dto.ErrCodeSolverData, i18n.ErrKeySolverData, nil, err)
	default:
		b.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}
