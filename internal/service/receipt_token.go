package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/laundry-pricing/internal/domain/model"
)

// ErrInvalidReceiptToken is returned when a download token is malformed,
// expired, or was issued for another receipt.
var ErrInvalidReceiptToken = errors.New("invalid receipt token")

const receiptTokenIssuer = "laundry-pricing"

// ReceiptTokenSigner issues and checks HS256 tokens that authorize a single
// receipt download until the receipt expires.
type ReceiptTokenSigner struct {
	key []byte
	now func() time.Time
}

// NewReceiptTokenSigner creates a signer for key. An empty key is replaced by
// a random one, which makes links valid only for the lifetime of the process.
func NewReceiptTokenSigner(key string) *ReceiptTokenSigner {
	secret := []byte(key)
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			panic(fmt.Sprintf("receipt signing key: %v", err))
		}
		log.Warn().Msg("RECEIPT_SIGNING_KEY not set, using a random key; download links will not survive restarts")
	}
	return &ReceiptTokenSigner{key: secret, now: time.Now}
}

// Sign returns a token whose subject is the receipt id and whose expiry
// matches the receipt's.
func (s *ReceiptTokenSigner) Sign(r *model.Receipt) (string, error) {
	if r == nil || r.ID == "" {
		return "", errors.New("receipt ID is empty, cannot sign token")
	}

	issuedAt := s.now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    receiptTokenIssuer,
		Subject:   r.ID,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		NotBefore: jwt.NewNumericDate(issuedAt),
	}
	if !r.ExpiresAt.IsZero() {
		claims.ExpiresAt = jwt.NewNumericDate(r.ExpiresAt)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.key)
}

// Verify checks that tokenString is valid for receiptID.
func (s *ReceiptTokenSigner) Verify(receiptID, tokenString string) error {
	if tokenString == "" {
		return ErrInvalidReceiptToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(receiptTokenIssuer),
		jwt.WithSubject(receiptID),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return ErrInvalidReceiptToken
	}
	return nil
}
