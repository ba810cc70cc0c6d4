package dto

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/laundry-pricing/internal/catalog"
	"github.com/guttosm/laundry-pricing/internal/domain/model"
)

func TestNewError(t *testing.T) {
	err := NewError(ErrCodeUnknownItem, "unknown items: sock").
		WithRequestID("req-1").
		WithDetails(map[string]string{"keys": "sock"})

	assert.Equal(t, ErrCodeUnknownItem, err.Error)
	assert.Equal(t, "unknown items: sock", err.Message)
	assert.Equal(t, "req-1", err.RequestID)
	assert.Equal(t, map[string]string{"keys": "sock"}, err.Details)
	assert.WithinDuration(t, time.Now(), err.Timestamp, time.Second)

	assert.Nil(t, NewError(ErrCodeInternal, "x").WithDetails(nil).Details)
}

func TestErrCodeFromStatus(t *testing.T) {
	tests := []struct {
		status       int
		expectedCode string
	}{
		{http.StatusBadRequest, ErrCodeInvalidRequest},
		{http.StatusUnauthorized, ErrCodeUnauthorized},
		{http.StatusNotFound, ErrCodeNotFound},
		{http.StatusConflict, ErrCodeConflict},
		{http.StatusTooManyRequests, ErrCodeRateLimit},
		{http.StatusGatewayTimeout, ErrCodeTimeout},
		{http.StatusServiceUnavailable, ErrCodeUnavailable},
		{http.StatusInternalServerError, ErrCodeInternal},
		{http.StatusBadGateway, ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.expectedCode, ErrCodeFromStatus(tt.status))
		})
	}
}

func TestQuoteResponse_JSON(t *testing.T) {
	q := model.EmptyQuote()
	q.TotalCost = model.MustParseMoney("11.90")
	q.Breakdown.SingleCategoryPacksUsed = map[model.TierID]int{"5": 1}
	q.Breakdown.LooseUnits = map[model.ItemKey]int{model.ItemShirt: 3}

	expires := time.Date(2025, 7, 14, 10, 30, 0, 0, time.UTC)
	resp := NewQuoteResponse(q).WithReceipt(&model.Receipt{ID: "r-1", ExpiresAt: expires}, "http://x/api/receipts/r-1/pdf?token=t")

	data, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 11.9, decoded["total_cost"])
	assert.Equal(t, "r-1", decoded["receipt_id"])
	assert.Equal(t, "http://x/api/receipts/r-1/pdf?token=t", decoded["pdf_url"])
	assert.Equal(t, "2025-07-14T10:30:00Z", decoded["expires_at"])
	breakdown := decoded["breakdown"].(map[string]any)
	assert.Equal(t, map[string]any{"5": 1.0}, breakdown["shirt_packs_used"])
	assert.Equal(t, map[string]any{}, breakdown["fixed_items"])

	data, err = json.Marshal(NewQuoteResponse(q))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "receipt_id")
	assert.NotContains(t, string(data), "expires_at")
}

func TestNewReceiptResponse(t *testing.T) {
	q := model.EmptyQuote()
	q.TotalCost = model.MustParseMoney("100.00")
	created := time.Date(2025, 7, 14, 10, 0, 0, 0, time.UTC)
	r := &model.Receipt{ID: "r-2", ClientName: "Ana", Quote: *q, CreatedAt: created, ExpiresAt: created.Add(30 * time.Minute)}

	resp := NewReceiptResponse(r)
	assert.Equal(t, "r-2", resp.ID)
	assert.Equal(t, "Ana", resp.ClientName)
	assert.Equal(t, "100.00", resp.TotalCost.String())
	assert.Equal(t, created.Add(30*time.Minute), resp.ExpiresAt)
}

func TestNewReceiptHistoryResponse(t *testing.T) {
	at := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	resp := NewReceiptHistoryResponse("r-1", 7, 2, 4, []model.LogEntry{
		{Timestamp: at, ActionType: model.ActionReceiptDownload, Level: "error", Message: "Receipt download failed", Error: "chrome gone", ClientID: "key-1", RequestID: "req-9", Path: "/api/receipts/r-1/pdf"},
	})

	assert.Equal(t, "r-1", resp.ReceiptID)
	assert.Equal(t, int64(7), resp.Total)
	assert.Equal(t, 2, resp.Limit)
	assert.Equal(t, 4, resp.Offset)
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, AuditEntry{
		Timestamp: at,
		Action:    model.ActionReceiptDownload,
		Level:     "error",
		Message:   "Receipt download failed",
		ClientID:  "key-1",
		RequestID: "req-9",
		Error:     "chrome gone",
	}, resp.Entries[0])

	raw, err := json.Marshal(NewReceiptHistoryResponse("r-2", 0, 50, 0, nil))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"entries":[]`)
}

func TestNewCatalogResponse(t *testing.T) {
	resp := NewCatalogResponse(catalog.Default())

	assert.Equal(t, "2025-07", resp.Version)
	assert.Equal(t, "EUR", resp.Currency)
	assert.Equal(t, 1350, resp.CapacityCeiling)
	assert.Len(t, resp.Items, 13)
	assert.Len(t, resp.MixedPacks, 3)
	assert.Len(t, resp.ShirtPacks, 2)

	var shirt CatalogItem
	for _, item := range resp.Items {
		if item.Key == model.ItemShirt {
			shirt = item
		}
	}
	assert.Equal(t, "Camisa", shirt.Label)
	assert.Equal(t, "1.80", shirt.Price.String())
	assert.True(t, shirt.Optimizable)
	assert.Equal(t, []string{"camisa"}, shirt.Aliases)

	assert.Equal(t, model.ItemKey("blazer"), resp.Items[0].Key)
	assert.False(t, resp.Items[0].Optimizable)
	assert.Empty(t, resp.Items[0].Aliases)
}
