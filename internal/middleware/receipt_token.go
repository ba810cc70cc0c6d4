package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/laundry-pricing/internal/i18n"
)

// ReceiptTokenQuery is the query parameter carrying a receipt download token.
const ReceiptTokenQuery = "token"

// ReceiptTokenVerifier checks a signed download token for a receipt.
type ReceiptTokenVerifier interface {
	VerifyToken(receiptID, token string) error
}

// ReceiptToken guards receipt routes with the signed link token. The token is
// read from the query string or from an "Authorization: Bearer" header and
// must have been issued for the :id path parameter.
func ReceiptToken(verifier ReceiptTokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		receiptID := c.Param("id")
		c.Set(string(ReceiptIDKey), receiptID)

		token := c.Query(ReceiptTokenQuery)
		if token == "" {
			token = bearerToken(c.GetHeader("Authorization"))
		}
		if token == "" {
			abortUnauthorized(c, i18n.ErrKeyReceiptTokenRequired)
			return
		}

		if err := verifier.VerifyToken(receiptID, token); err != nil {
			abortUnauthorized(c, i18n.ErrKeyInvalidReceiptToken)
			return
		}

		c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
