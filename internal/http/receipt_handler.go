package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/laundry-pricing/internal/circuitbreaker"
	"github.com/guttosm/laundry-pricing/internal/domain/dto"
	"github.com/guttosm/laundry-pricing/internal/domain/model"
	"github.com/guttosm/laundry-pricing/internal/i18n"
	"github.com/guttosm/laundry-pricing/internal/middleware"
	"github.com/guttosm/laundry-pricing/internal/service"
)

// receiptFilePrefix names downloaded receipts; the issue date is appended.
const receiptFilePrefix = "recibo_engomadoria_teresa_"

// GetReceipt handles GET /api/receipts/:id.
//
// @Summary      Get receipt
// @Description  Returns a previously issued receipt while it has not expired.
// @Tags         Receipts
// @Produce      json
// @Param        id path string true "Receipt ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.ReceiptResponse}
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid API key"
// @Failure      404 {object} dto.ErrorResponse "Receipt not found or expired"
// @Security     ApiKeyAuth
// @Router       /api/receipts/{id} [get]
func (h *Handler) GetReceipt(c *gin.Context) {
	builder := NewResponseBuilder(c)

	receipt, err := h.receipts.Get(c.Param("id"))
	if err != nil {
		writeReceiptError(builder, err)
		return
	}

	c.Set(string(middleware.ReceiptIDKey), receipt.ID)
	middleware.AuditLog(h.sink, c, model.ActionReceiptView, "Receipt viewed", nil)
	builder.SuccessOK(dto.NewReceiptResponse(receipt))
}

// DownloadReceiptPDF handles GET /api/receipts/:id/pdf.
//
// @Summary      Download receipt PDF
// @Description  Renders the receipt as a PDF. The link returned by /api/optimize carries a signed token and needs no API key.
// @Tags         Receipts
// @Produce      application/pdf
// @Param        id    path  string true "Receipt ID"
// @Param        token query string true "Signed download token"
// @Success      200 {file} binary "Receipt PDF"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure      404 {object} dto.ErrorResponse "Receipt not found or expired"
// @Failure      502 {object} dto.ErrorResponse "PDF rendering failed"
// @Failure      503 {object} dto.ErrorResponse "Renderer temporarily unavailable"
// @Failure      504 {object} dto.ErrorResponse "Rendering timed out"
// @Router       /api/receipts/{id}/pdf [get]
func (h *Handler) DownloadReceiptPDF(c *gin.Context) {
	builder := NewResponseBuilder(c)
	id := c.Param("id")

	receipt, err := h.receipts.Get(id)
	if err != nil {
		writeReceiptError(builder, err)
		return
	}

	pdf, err := h.receipts.RenderPDF(c.Request.Context(), id)
	if err != nil {
		middleware.AuditLogError(h.sink, c, model.ActionReceiptDownload, "Receipt download failed", err, nil)
		writeReceiptError(builder, err)
		return
	}

	filename := receiptFilePrefix + receipt.CreatedAt.Format("20060102") + ".pdf"
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Cache-Control", "no-store")

	middleware.AuditLog(h.sink, c, model.ActionReceiptDownload, "Receipt downloaded", map[string]interface{}{
		"bytes": len(pdf),
	})
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// ReceiptHistory handles GET /api/receipts/:id/history.
//
// @Summary      Receipt audit trail
// @Description  Lists the recorded actions on a receipt (quote, views, PDF downloads), newest first. The trail outlives the receipt itself until the log TTL removes it.
// @Tags         Receipts
// @Produce      json
// @Param        id     path  string true  "Receipt ID"
// @Param        action query string false "Only this action" Enums(optimize, receipt_view, receipt_download)
// @Param        limit  query int    false "Page size (1-500)" default(50)
// @Param        offset query int    false "Entries to skip" default(0)
// @Success      200 {object} dto.SuccessResponse{data=dto.ReceiptHistoryResponse}
// @Failure      400 {object} dto.ErrorResponse "Invalid action, limit or offset"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid API key"
// @Failure      503 {object} dto.ErrorResponse "Log store temporarily unavailable"
// @Security     ApiKeyAuth
// @Router       /api/receipts/{id}/history [get]
func (h *Handler) ReceiptHistory(c *gin.Context) {
	builder := NewResponseBuilder(c)

	opts, err := historyQuery(c)
	if err != nil {
		writeRequestError(builder, err)
		return
	}

	ctx := c.Request.Context()
	total, err := h.audit.CountLogs(ctx, opts)
	if err != nil {
		writeReceiptError(builder, err)
		return
	}
	entries, err := h.audit.QueryLogs(ctx, opts)
	if err != nil {
		writeReceiptError(builder, err)
		return
	}

	builder.SuccessOK(dto.NewReceiptHistoryResponse(opts.ReceiptID, total, opts.Limit, opts.Skip, entries))
}

// defaultHistoryLimit is the page size when ?limit is absent.
const defaultHistoryLimit = 50

var auditActions = map[string]bool{
	model.ActionOptimize:        true,
	model.ActionReceiptView:     true,
	model.ActionReceiptDownload: true,
}

func historyQuery(c *gin.Context) (model.LogQueryOptions, error) {
	opts := model.LogQueryOptions{
		ReceiptID:  c.Param("id"),
		ActionType: c.Query("action"),
		Limit:      defaultHistoryLimit,
	}
	if opts.ActionType != "" && !auditActions[opts.ActionType] {
		return opts, &dto.ValidationError{Field: "action", Message: "unknown action " + opts.ActionType}
	}
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > service.MaxLogQueryLimit {
			return opts, &dto.ValidationError{Field: "limit", Message: fmt.Sprintf("must be between 1 and %d", service.MaxLogQueryLimit)}
		}
		opts.Limit = n
	}
	if raw := c.Query("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return opts, &dto.ValidationError{Field: "offset", Message: "must be zero or more"}
		}
		opts.Skip = n
	}
	return opts, nil
}

func writeReceiptError(b *ResponseBuilder, err error) {
	switch {
	case errors.Is(err, service.ErrReceiptNotFound):
		b.Error(http.StatusNotFound, i18n.ErrKeyReceiptNotFound, err)
	case errors.Is(err, circuitbreaker.ErrCircuitOpen):
		b.ErrorWithCode(http.StatusServiceUnavailable, dto.ErrCodeUnavailable, i18n.ErrKeyServiceUnavailable, nil, err)
	case errors.Is(err, context.DeadlineExceeded):
		b.Error(http.StatusGatewayTimeout, i18n.ErrKeyTimeout, err)
	case errors.Is(err, service.ErrReceiptRender):
		b.ErrorWithCode(http.StatusBadGateway, dto.ErrCodeRenderFailed, i18n.ErrKeyRenderFailed, nil, err)
	default:
		b.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}
