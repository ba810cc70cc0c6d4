package middleware

import (
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/laundry-pricing/internal/domain/dto"
	"github.com/guttosm/laundry-pricing/internal/i18n"
	"golang.org/x/crypto/bcrypt"
)

const (
	// APIKeyHeader is the HTTP header name for API key authentication.
	APIKeyHeader = "X-API-Key"
	// APIKeyQuery is the query parameter name for API key authentication.
	APIKeyQuery = "api_key"
)

// APIKeySet holds the accepted API keys. Keys are configured as
// "name:secret" or bare "secret"; a secret starting with "$2" is treated as
// a bcrypt hash.
type APIKeySet struct {
	plain  map[string]string
	hashed []hashedKey

	mu       sync.RWMutex
	verified map[[sha256.Size]byte]string
}

type hashedKey struct {
	name string
	hash []byte
}

// ParseAPIKeys builds an APIKeySet from configured entries. Blank entries
// are skipped.
func ParseAPIKeys(entries []string) *APIKeySet {
	s := &APIKeySet{
		plain:    make(map[string]string),
		verified: make(map[[sha256.Size]byte]string),
	}

	for i, raw := range entries {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		name, secret := fmt.Sprintf("key-%d", i+1), raw
		if idx := strings.Index(raw, ":"); idx > 0 {
			name, secret = raw[:idx], raw[idx+1:]
		}
		if secret == "" {
			continue
		}

		if strings.HasPrefix(secret, "$2") {
			s.hashed = append(s.hashed, hashedKey{name: name, hash: []byte(secret)})
			continue
		}
		s.plain[secret] = name
	}
	return s
}

// Len returns the number of configured keys.
func (s *APIKeySet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.plain) + len(s.hashed)
}

// Lookup returns the client name for key.
func (s *APIKeySet) Lookup(key string) (string, bool) {
	if s == nil || key == "" {
		return "", false
	}

	for secret, name := range s.plain {
		if subtle.ConstantTimeCompare([]byte(secret), []byte(key)) == 1 {
			return name, true
		}
	}

	digest := sha256.Sum256([]byte(key))
	s.mu.RLock()
	name, ok := s.verified[digest]
	s.mu.RUnlock()
	if ok {
		return name, true
	}

	for _, hk := range s.hashed {
		if bcrypt.CompareHashAndPassword(hk.hash, []byte(key)) == nil {
			s.mu.Lock()
			s.verified[digest] = hk.name
			s.mu.Unlock()
			return hk.name, true
		}
	}
	return "", false
}

// APIKeyAuth validates the X-API-Key header, falling back to the api_key
// query parameter. With no keys configured every request passes. The
// matched client name is stored under ClientIDKey.
func APIKeyAuth(keys *APIKeySet) gin.HandlerFunc {
	return func(c *gin.Context) {
		if keys.Len() == 0 {
			c.Next()
			return
		}

		key := c.GetHeader(APIKeyHeader)
		if key == "" {
			key = c.Query(APIKeyQuery)
		}

		if key == "" {
			abortUnauthorized(c, i18n.ErrKeyAPIKeyRequired)
			return
		}

		name, ok := keys.Lookup(key)
		if !ok {
			abortUnauthorized(c, i18n.ErrKeyInvalidAPIKey)
			return
		}

		c.Set(string(ClientIDKey), name)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, messageKey string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewError(dto.ErrCodeUnauthorized, i18n.T(c, messageKey)).
			WithRequestID(GetRequestID(c)))
}
