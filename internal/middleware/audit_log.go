package middleware

import (
	"github.com/gin-gonic/gin"
)

// AuditLog records a business action such as a quote or a receipt download.
func AuditLog(sink LogSink, c *gin.Context, actionType, message string, fields map[string]interface{}) {
	if sink == nil {
		return
	}

	entry := newEntry(c, "info", message)
	entry.ActionType = actionType
	if len(fields) > 0 {
		entry.WithFields(fields)
	}
	sink.Log(entry)
}

// AuditLogError records a failed business action.
func AuditLogError(sink LogSink, c *gin.Context, actionType, message string, err error, fields map[string]interface{}) {
	if sink == nil {
		return
	}

	entry := newEntry(c, "error", message)
	entry.ActionType = actionType
	if err != nil {
		entry.Error = err.Error()
	}
	if len(fields) > 0 {
		entry.WithFields(fields)
	}
	sink.Log(entry)
}
