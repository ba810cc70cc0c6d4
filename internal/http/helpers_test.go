package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/laundry-pricing/internal/domain/dto"
	"github.com/guttosm/laundry-pricing/internal/domain/model"
	"github.com/guttosm/laundry-pricing/internal/mocks"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// recordingSink keeps every log entry handed to it.
type recordingSink struct {
	mu      sync.Mutex
	entries []*model.LogEntry
}

func (s *recordingSink) Log(entry *model.LogEntry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return true
}

// Actions returns the audit entries with the given action type.
func (s *recordingSink) Actions(action string) []*model.LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*model.LogEntry
	for _, e := range s.entries {
		if e.ActionType == action {
			out = append(out, e)
		}
	}
	return out
}

type testServer struct {
	router    *gin.Engine
	optimizer *mocks.MockQuoteOptimizer
	receipts  *mocks.MockReceiptService
	audit     *mocks.MockLoggingService
	sink      *recordingSink
}

// newTestServer builds a router over mocked services. withReceipts controls
// whether the handler has a receipt service and an audit trail.
func newTestServer(t *testing.T, withReceipts bool, cfg RouterConfig) *testServer {
	t.Helper()

	ts := &testServer{
		optimizer: &mocks.MockQuoteOptimizer{},
		sink:      &recordingSink{},
	}
	t.Cleanup(func() { ts.optimizer.AssertExpectations(t) })

	var handler *Handler
	if withReceipts {
		ts.receipts = &mocks.MockReceiptService{}
		t.Cleanup(func() { ts.receipts.AssertExpectations(t) })
		ts.audit = mocks.NewMockLoggingService(t)
		handler = NewHandler(ts.optimizer, ts.receipts,
			WithBaseURL("https://pricing.test/"), WithVersion("2.0.1"), WithAuditTrail(ts.audit))
	} else {
		handler = NewHandler(ts.optimizer, nil, WithVersion("2.0.1"))
	}

	cfg.LogSink = ts.sink
	ts.router = NewRouter(handler, NewHealthHandler(), cfg)
	return ts
}

func (ts *testServer) do(method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

// decodeData unmarshals the data field of a success envelope into v.
func decodeData(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	var env struct {
		Data      json.RawMessage `json:"data"`
		RequestID string          `json:"request_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.NotEmpty(t, env.RequestID)
	require.NoError(t, json.Unmarshal(env.Data, v))
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func sampleQuote() *model.Quote {
	b := model.EmptyBreakdown()
	b.SingleCategoryPacksUsed["5"] = 1
	b.LooseUnits[model.ItemShirt] = 3
	b.Costs.SingleCategoryPacks = model.MustParseMoney("6.50")
	b.Costs.LooseUnits = model.MustParseMoney("5.40")
	b.Costs.VariableTotal = model.MustParseMoney("11.90")
	b.Costs.Total = model.MustParseMoney("11.90")
	return &model.Quote{TotalCost: model.MustParseMoney("11.90"), Breakdown: b}
}

func newJSONRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
