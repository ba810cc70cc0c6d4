package http

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/guttosm/laundry-pricing/internal/catalog"
	"github.com/guttosm/laundry-pricing/internal/middleware"
	"github.com/guttosm/laundry-pricing/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDefaultRouterConfig(t *testing.T) {
	cfg := DefaultRouterConfig()
	assert.Equal(t, middleware.DefaultRequestTimeout, cfg.RequestTimeout)
	assert.Nil(t, cfg.RateLimiter)
	assert.Nil(t, cfg.IdempotencyCache)
	assert.Equal(t, 0, cfg.APIKeys.Len())
}

func TestNewRouter_InfrastructureRoutes(t *testing.T) {
	router := NewRouter(nil, NewHealthHandler(), DefaultRouterConfig())

	tests := []struct {
		path           string
		expectedStatus int
	}{
		{path: "/healthz", expectedStatus: http.StatusOK},
		{path: "/readyz", expectedStatus: http.StatusOK},
		{path: "/metrics", expectedStatus: http.StatusOK},
		{path: "/api/optimize", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := serve(router, newJSONRequest(http.MethodGet, tt.path, ""))
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		})
	}
}

func TestNewRouter_SwaggerBasicAuth(t *testing.T) {
	cfg := DefaultRouterConfig()
	cfg.SwaggerUser = "docs"
	cfg.SwaggerPass = "secret"
	router := NewRouter(nil, NewHealthHandler(), cfg)

	w := serve(router, newJSONRequest(http.MethodGet, "/swagger/index.html", ""))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestNewRouter_APIKeyAuth(t *testing.T) {
	cfg := DefaultRouterConfig()
	cfg.APIKeys = middleware.ParseAPIKeys([]string{"teresa:s3cret"})
	ts := newTestServer(t, true, cfg)
	ts.optimizer.On("Catalog").Return(catalog.Default()).Once()

	tests := []struct {
		name           string
		path           string
		headers        map[string]string
		expectedStatus int
	}{
		{name: "missing key", path: "/api/catalog", expectedStatus: http.StatusUnauthorized},
		{name: "wrong key", path: "/api/catalog", headers: map[string]string{"X-API-Key": "nope"}, expectedStatus: http.StatusUnauthorized},
		{name: "valid key", path: "/api/catalog", headers: map[string]string{"X-API-Key": "s3cret"}, expectedStatus: http.StatusOK},
		{name: "receipt view is protected", path: "/api/receipts/r-1", expectedStatus: http.StatusUnauthorized},
		{name: "root is public", path: "/", expectedStatus: http.StatusOK},
		{name: "health is public", path: "/healthz", expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ts.do(http.MethodGet, tt.path, "", tt.headers)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}

	t.Run("pdf link needs only its token", func(t *testing.T) {
		ts.receipts.On("VerifyToken", "r-1", "tok").Return(nil).Once()
		ts.receipts.On("Get", "r-1").Return(storedReceipt(), nil).Once()
		ts.receipts.On("RenderPDF", mock.Anything, "r-1").Return([]byte("%PDF"), nil).Once()

		w := ts.do(http.MethodGet, "/api/receipts/r-1/pdf?token=tok", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestNewRouter_RateLimit(t *testing.T) {
	cfg := DefaultRouterConfig()
	cfg.RateLimiter = middleware.NewRateLimiter(2, time.Minute)
	t.Cleanup(cfg.RateLimiter.Stop)
	ts := newTestServer(t, false, cfg)

	for i := 0; i < 2; i++ {
		w := ts.do(http.MethodGet, "/healthz", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	}

	w := ts.do(http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestNewRouter_Idempotency(t *testing.T) {
	cfg := DefaultRouterConfig()
	cfg.IdempotencyCache = middleware.NewIdempotencyCache(time.Minute, 100)
	t.Cleanup(cfg.IdempotencyCache.Stop)
	ts := newTestServer(t, false, cfg)
	ts.optimizer.On("Optimize", mock.Anything).Return(sampleQuote(), nil).Once()

	headers := map[string]string{middleware.IdempotencyKeyHeader: "order-42"}
	first := ts.do(http.MethodPost, "/api/optimize", `{"shirt": 8}`, headers)
	second := ts.do(http.MethodPost, "/api/optimize", `{"shirt": 8}`, headers)

	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Empty(t, first.Header().Get(middleware.IdempotencyReplayedHeader))
	assert.Equal(t, "true", second.Header().Get(middleware.IdempotencyReplayedHeader))
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestNewRouter_CORS(t *testing.T) {
	tests := []struct {
		name          string
		origins       []string
		origin        string
		expectAllowed bool
	}{
		{name: "default allows chat client", origin: "https://chat.openai.com", expectAllowed: true},
		{name: "default rejects unknown origin", origin: "https://evil.example", expectAllowed: false},
		{name: "configured origin", origins: []string{"https://shop.example"}, origin: "https://shop.example", expectAllowed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultRouterConfig()
			cfg.CORSOrigins = tt.origins
			ts := newTestServer(t, false, cfg)

			w := ts.do(http.MethodOptions, "/api/optimize", "", map[string]string{
				"Origin":                        tt.origin,
				"Access-Control-Request-Method": http.MethodPost,
			})

			if tt.expectAllowed {
				assert.Equal(t, tt.origin, w.Header().Get("Access-Control-Allow-Origin"))
			} else {
				assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}

func TestNewRouter_Compression(t *testing.T) {
	ts := newTestServer(t, false, DefaultRouterConfig())
	ts.optimizer.On("Catalog").Return(catalog.Default()).Once()

	w := ts.do(http.MethodGet, "/api/catalog", "", map[string]string{"Accept-Encoding": "gzip"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
}

func TestNewRouter_UsesConfiguredSink(t *testing.T) {
	sink := &recordingSink{}
	optimizer := &mocks.MockQuoteOptimizer{}
	optimizer.On("Optimize", mock.Anything).Return(sampleQuote(), nil).Once()

	cfg := DefaultRouterConfig()
	cfg.LogSink = sink
	router := NewRouter(NewHandler(optimizer, nil), nil, cfg)

	w := serve(router, newJSONRequest(http.MethodPost, "/api/optimize", `{"shirt": 8}`))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, sink.Actions("optimize"), 1)
	assert.True(t, strings.HasPrefix(sink.entries[0].Path, "/api/"))
	optimizer.AssertExpectations(t)
}
