package dto

import (
	"net/http"
	"sort"
	"time"

	"github.com/guttosm/laundry-pricing/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
	// ErrCodeUnavailable indicates a dependency is temporarily unavailable.
	ErrCodeUnavailable = "service_unavailable"
	// ErrCodeRenderFailed indicates the receipt PDF could not be produced.
	ErrCodeRenderFailed = "render_failed"

	// Order errors carry the optimizer error kind as their code.
	ErrCodeUnknownItem      = "unknown_item"
	ErrCodeInvalidQuantity  = "invalid_quantity"
	ErrCodeCapacityExceeded = "capacity_exceeded"
	ErrCodeInfeasible       = "infeasible"
	ErrCodeSolverData       = "solver_data"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the endpoint payload.
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2025-07-14T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"unknown_item"`
	Message string `json:"message,omitempty" example:"unknown items: sock"`
	// Details names the offending keys or values, e.g. {"keys": "sock"}.
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2025-07-14T10:00:00Z"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// WithDetails attaches details to the error response.
func (e ErrorResponse) WithDetails(details map[string]string) ErrorResponse {
	if len(details) > 0 {
		e.Details = details
	}
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	case http.StatusServiceUnavailable:
		return ErrCodeUnavailable
	default:
		return ErrCodeInternal
	}
}

// QuoteResponse is the result of POST /api/optimize.
// @Description Cheapest price for an order with its breakdown
type QuoteResponse struct {
	TotalCost model.Money     `json:"total_cost" swaggertype:"number" example:"35.90"`
	Breakdown model.Breakdown `json:"breakdown"`
	// ReceiptID identifies the stored receipt; empty when receipts are disabled.
	ReceiptID string `json:"receipt_id,omitempty" example:"5b1f7a3e-0c59-4a57-9d0e-3f4c2a1b9e77"`
	// PDFURL is a signed download link valid until ExpiresAt.
	PDFURL    string     `json:"pdf_url,omitempty" example:"http://localhost:8080/api/receipts/5b1f7a3e-0c59-4a57-9d0e-3f4c2a1b9e77/pdf?token=eyJ..."`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
} // @name QuoteResponse

// NewQuoteResponse converts a quote.
func NewQuoteResponse(q *model.Quote) QuoteResponse {
	return QuoteResponse{TotalCost: q.TotalCost, Breakdown: q.Breakdown}
}

// WithReceipt attaches receipt link details.
func (r QuoteResponse) WithReceipt(receipt *model.Receipt, pdfURL string) QuoteResponse {
	r.ReceiptID = receipt.ID
	r.PDFURL = pdfURL
	expiresAt := receipt.ExpiresAt
	r.ExpiresAt = &expiresAt
	return r
}

// ReceiptResponse is the result of GET /api/receipts/{id}.
// @Description A stored receipt
type ReceiptResponse struct {
	ID         string          `json:"id"`
	ClientName string          `json:"client_name,omitempty"`
	TotalCost  model.Money     `json:"total_cost" swaggertype:"number" example:"35.90"`
	Breakdown  model.Breakdown `json:"breakdown"`
	CreatedAt  time.Time       `json:"created_at"`
	ExpiresAt  time.Time       `json:"expires_at"`
} // @name ReceiptResponse

// NewReceiptResponse converts a receipt.
func NewReceiptResponse(r *model.Receipt) ReceiptResponse {
	return ReceiptResponse{
		ID:         r.ID,
		ClientName: r.ClientName,
		TotalCost:  r.Quote.TotalCost,
		Breakdown:  r.Quote.Breakdown,
		CreatedAt:  r.CreatedAt,
		ExpiresAt:  r.ExpiresAt,
	}
}

// AuditEntry is one recorded action on a receipt.
type AuditEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action" example:"receipt_download"`
	Level     string    `json:"level" example:"info"`
	Message   string    `json:"message" example:"Receipt downloaded"`
	ClientID  string    `json:"client_id,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
	Error     string    `json:"error,omitempty"`
} // @name AuditEntry

// ReceiptHistoryResponse is the result of GET /api/receipts/{id}/history.
// @Description Audit trail of a receipt, newest first
type ReceiptHistoryResponse struct {
	ReceiptID string       `json:"receipt_id"`
	Total     int64        `json:"total" example:"3"`
	Limit     int          `json:"limit" example:"50"`
	Offset    int          `json:"offset" example:"0"`
	Entries   []AuditEntry `json:"entries"`
} // @name ReceiptHistoryResponse

// NewReceiptHistoryResponse converts one page of audit entries.
func NewReceiptHistoryResponse(receiptID string, total int64, limit, offset int, entries []model.LogEntry) ReceiptHistoryResponse {
	out := make([]AuditEntry, len(entries))
	for i, e := range entries {
		out[i] = AuditEntry{
			Timestamp: e.Timestamp,
			Action:    e.ActionType,
			Level:     e.Level,
			Message:   e.Message,
			ClientID:  e.ClientID,
			RequestID: e.RequestID,
			Error:     e.Error,
		}
	}
	return ReceiptHistoryResponse{
		ReceiptID: receiptID,
		Total:     total,
		Limit:     limit,
		Offset:    offset,
		Entries:   out,
	}
}

// CatalogItem is one priced item of the catalog.
type CatalogItem struct {
	Key         model.ItemKey `json:"key" example:"shirt"`
	Label       string        `json:"label" example:"Camisa"`
	Price       model.Money   `json:"price" swaggertype:"number" example:"1.80"`
	Optimizable bool          `json:"optimizable"`
	Aliases     []string      `json:"aliases,omitempty"`
} // @name CatalogItem

// CatalogResponse is the result of GET /api/catalog.
// @Description Active price list
type CatalogResponse struct {
	Version         string                         `json:"version" example:"2025-07"`
	Currency        string                         `json:"currency" example:"EUR"`
	Items           []CatalogItem                  `json:"items"`
	MixedPacks      []model.MixedPackTier          `json:"mixed_packs"`
	ShirtPacks      []model.SingleCategoryPackTier `json:"shirt_packs"`
	CapacityCeiling int                            `json:"capacity_ceiling" example:"1350"`
} // @name CatalogResponse

// NewCatalogResponse converts a catalog, listing items in key order.
func NewCatalogResponse(c *model.PricingCatalog) CatalogResponse {
	aliases := make(map[model.ItemKey][]string)
	for alias, key := range c.Aliases {
		aliases[key] = append(aliases[key], alias)
	}

	keys := c.Keys()
	items := make([]CatalogItem, 0, len(keys))
	for _, key := range keys {
		price, _ := c.UnitPrice(key)
		a := aliases[key]
		sort.Strings(a)
		items = append(items, CatalogItem{
			Key:         key,
			Label:       c.Label(key),
			Price:       price,
			Optimizable: model.IsOptimizable(key),
			Aliases:     a,
		})
	}

	return CatalogResponse{
		Version:         c.Version,
		Currency:        c.Currency,
		Items:           items,
		MixedPacks:      c.MixedPackTiers,
		ShirtPacks:      c.SingleCategoryPackTiers,
		CapacityCeiling: c.CapacityCeiling(),
	}
}

// ServiceInfo is the result of GET /.
// @Description Service description and endpoint list
type ServiceInfo struct {
	Service   string            `json:"service" example:"laundry-pricing"`
	Version   string            `json:"version" example:"1.0.0"`
	Endpoints map[string]string `json:"endpoints"`
} // @name ServiceInfo
