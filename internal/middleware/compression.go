package middleware

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// Compression gzips responses for clients that accept it. PDF downloads are
// left alone since the documents are already compressed.
func Compression() gin.HandlerFunc {
	return gzip.Gzip(gzip.DefaultCompression,
		gzip.WithExcludedPathsRegexs([]string{`^/api/receipts/[^/]+/pdf$`}),
		gzip.WithExcludedExtensions([]string{".pdf", ".png"}),
	)
}
