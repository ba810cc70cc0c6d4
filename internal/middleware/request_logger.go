package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/laundry-pricing/internal/domain/model"
	"github.com/guttosm/laundry-pricing/internal/logger"
)

// Context keys filled by auth and handlers and copied into log entries.
const (
	ClientIDKey  ContextKey = "client_id"
	ReceiptIDKey ContextKey = "receipt_id"
)

// RequestLogger logs every request to the console and, when sink is not
// nil, hands a LogEntry to it for persistence.
func RequestLogger(sink LogSink) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		requestID := GetRequestID(c)

		log := logger.ForRequest(requestID).With().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status_code", statusCode).
			Int64("duration_ms", latency.Milliseconds()).
			Str("ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent()).
			Logger()

		switch {
		case statusCode >= 500:
			log.Error().Msg("HTTP request")
		case statusCode >= 400:
			log.Warn().Msg("HTTP request")
		default:
			log.Info().Msg("HTTP request")
		}

		if sink == nil {
			return
		}

		entry := newEntry(c, getLogLevel(statusCode), "HTTP request")
		entry.StatusCode = statusCode
		entry.Duration = latency.Milliseconds()
		sink.Log(entry)
	}
}

// newEntry fills the request fields shared by request and audit entries.
func newEntry(c *gin.Context, level, message string) *model.LogEntry {
	return &model.LogEntry{
		Timestamp: time.Now().UTC(),
		Level:     level,
		Message:   message,
		RequestID: GetRequestID(c),
		Method:    c.Request.Method,
		Path:      c.Request.URL.Path,
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		ClientID:  c.GetString(string(ClientIDKey)),
		ReceiptID: c.GetString(string(ReceiptIDKey)),
	}
}

// getLogLevel returns the log level based on HTTP status code.
func getLogLevel(statusCode int) string {
	switch {
	case statusCode >= 500:
		return "error"
	case statusCode >= 400:
		return "warn"
	default:
		return "info"
	}
}
