//go:build integration

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/guttosm/laundry-pricing/internal/domain/dto"
	"github.com/guttosm/laundry-pricing/internal/domain/model"
	"github.com/guttosm/laundry-pricing/internal/middleware"
	"github.com/guttosm/laundry-pricing/internal/repository"
	"github.com/guttosm/laundry-pricing/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// echoRenderer returns a tiny document naming the receipt.
type echoRenderer struct{}

func (echoRenderer) Render(_ context.Context, r *model.Receipt) ([]byte, error) {
	return []byte("%PDF-1.4 " + r.ID), nil
}

// setupLoggingRouter wires receipts and the audit trail over a fresh
// database and returns the router with the raw database for assertions.
func setupLoggingRouter(t *testing.T) (http.Handler, *repository.MongoDB) {
	t.Helper()
	db := newLogsDB(t)
	logging := service.NewLoggingService(repository.NewLogsRepository(db))
	asyncLogger := middleware.NewAsyncLogger(logging, middleware.AsyncLoggerConfig{
		BufferSize:    100,
		NumWorkers:    1,
		BatchSize:     10,
		FlushInterval: 50 * time.Millisecond,
		WriteTimeout:  5 * time.Second,
	})
	t.Cleanup(asyncLogger.Stop)

	store := service.NewReceiptStore(100, time.Minute, 0, 4)
	t.Cleanup(store.Stop)
	receipts := service.NewReceiptService(store, echoRenderer{}, nil, service.ReceiptConfig{
		TTL:        time.Minute,
		SigningKey: "integration-key",
	})

	cfg := DefaultRouterConfig()
	cfg.LogSink = asyncLogger
	handler := NewHandler(service.NewQuoteOptimizerService(), receipts, WithAuditTrail(logging))
	return NewRouter(handler, NewHealthHandler(), cfg), db
}

// countLogs returns -1 when the count fails so it can sit inside Eventually.
func countLogs(db *repository.MongoDB, filter bson.M) int64 {
	n, err := db.Logs.CountDocuments(context.Background(), filter)
	if err != nil {
		return -1
	}
	return n
}

func TestIntegration_OptimizePersistsLogs(t *testing.T) {
	router, db := setupLoggingRouter(t)

	req := newJSONRequest(http.MethodPost, "/api/optimize", `{"shirt": 8}`)
	req.Header.Set("X-Request-ID", "integration-req-1")
	w := serve(router, req)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Eventually(t, func() bool {
		return countLogs(db, bson.M{"request_id": "integration-req-1"}) == 2
	}, 5*time.Second, 50*time.Millisecond, "request and audit entries are stored")

	var audit model.LogEntry
	err := db.Logs.FindOne(context.Background(), bson.M{
		"request_id":  "integration-req-1",
		"action_type": model.ActionOptimize,
	}).Decode(&audit)
	require.NoError(t, err)
	assert.Equal(t, "11.90", audit.Fields["total_cost"])
	assert.Equal(t, "/api/optimize", audit.Path)
	assert.NotEmpty(t, audit.ReceiptID)
}

func TestIntegration_FailedQuoteIsAudited(t *testing.T) {
	router, db := setupLoggingRouter(t)

	req := newJSONRequest(http.MethodPost, "/api/optimize", `{"sock": 1}`)
	req.Header.Set("X-Request-ID", "integration-req-2")
	w := serve(router, req)
	require.Equal(t, http.StatusBadRequest, w.Code)

	assert.Eventually(t, func() bool {
		return countLogs(db, bson.M{
			"request_id":  "integration-req-2",
			"level":       "error",
			"action_type": model.ActionOptimize,
		}) == 1
	}, 5*time.Second, 50*time.Millisecond)
}

func TestIntegration_ReceiptHistory(t *testing.T) {
	router, _ := setupLoggingRouter(t)

	w := serve(router, newJSONRequest(http.MethodPost, "/api/optimize", `{"camisa": 8, "cliente": "Maria"}`))
	require.Equal(t, http.StatusOK, w.Code)
	var quote dto.QuoteResponse
	decodeData(t, w, &quote)
	require.NotEmpty(t, quote.ReceiptID)

	// entries are ordered by timestamp; keep them apart
	time.Sleep(10 * time.Millisecond)
	w = serve(router, newJSONRequest(http.MethodGet, "/api/receipts/"+quote.ReceiptID, ""))
	require.Equal(t, http.StatusOK, w.Code)

	time.Sleep(10 * time.Millisecond)
	link, err := url.Parse(quote.PDFURL)
	require.NoError(t, err)
	w = serve(router, newJSONRequest(http.MethodGet, link.RequestURI(), ""))
	require.Equal(t, http.StatusOK, w.Code)

	historyPath := "/api/receipts/" + quote.ReceiptID + "/history"
	var history dto.ReceiptHistoryResponse
	require.Eventually(t, func() bool {
		w := serve(router, newJSONRequest(http.MethodGet, historyPath, ""))
		var env struct {
			Data dto.ReceiptHistoryResponse `json:"data"`
		}
		if w.Code != http.StatusOK || json.Unmarshal(w.Body.Bytes(), &env) != nil {
			return false
		}
		history = env.Data
		return history.Total == 3
	}, 5*time.Second, 50*time.Millisecond)

	require.Len(t, history.Entries, 3)
	assert.Equal(t, model.ActionReceiptDownload, history.Entries[0].Action)
	assert.Equal(t, model.ActionReceiptView, history.Entries[1].Action)
	assert.Equal(t, model.ActionOptimize, history.Entries[2].Action)

	w = serve(router, newJSONRequest(http.MethodGet, historyPath+"?action=receipt_download", ""))
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &history)
	assert.Equal(t, int64(1), history.Total)
	require.Len(t, history.Entries, 1)
	assert.Equal(t, "Receipt downloaded", history.Entries[0].Message)
}
