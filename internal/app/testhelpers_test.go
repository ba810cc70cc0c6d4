package app

import (
	"bytes"
	"net/http/httptest"
	"time"

	"github.com/guttosm/laundry-pricing/config"
)

// testConfig mirrors the defaults of config.Load without reading the environment.
func testConfig() config.Config {
	return config.Config{
		Server: config.ServerConfig{
			Port:           "8080",
			RateLimit:      100,
			RateWindow:     time.Minute,
			RequestTimeout: 30 * time.Second,
			Version:        "test",
		},
		Receipts: config.ReceiptsConfig{
			Enabled:       true,
			TTL:           30 * time.Minute,
			SweepInterval: time.Minute,
			CacheSize:     100,
			SigningKey:    "test-signing-key",
			RenderTimeout: time.Second,
		},
		Database: config.DatabaseConfig{
			LogsTTL:                        30 * 24 * time.Hour,
			CircuitBreakerFailureThreshold: 5,
			CircuitBreakerSuccessThreshold: 2,
			CircuitBreakerTimeout:          30 * time.Second,
		},
		Log: config.LogConfig{Level: "error"},
	}
}

func doRequest(a *App, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	return w
}
