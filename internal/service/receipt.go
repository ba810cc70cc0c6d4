package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/laundry-pricing/internal/circuitbreaker"
	"github.com/guttosm/laundry-pricing/internal/domain/model"
	"github.com/guttosm/laundry-pricing/internal/metrics"
	"github.com/guttosm/laundry-pricing/internal/service/cache"
)

var (
	// ErrReceiptNotFound is returned for unknown or expired receipt ids.
	ErrReceiptNotFound = errors.New("receipt not found")
	// ErrReceiptRender wraps failures of the PDF renderer.
	ErrReceiptRender = errors.New("receipt rendering failed")
)

// PDF render outcomes recorded in metrics.
const (
	RenderStatusSuccess  = "success"
	RenderStatusError    = "error"
	RenderStatusRejected = "rejected"
)

// ReceiptRenderer turns a stored receipt into a PDF document.
type ReceiptRenderer interface {
	Render(ctx context.Context, receipt *model.Receipt) ([]byte, error)
}

// ReceiptService issues receipts for computed quotes and serves them back.
type ReceiptService interface {
	// Issue stores a receipt for quote and returns it with a signed download token.
	Issue(quote *model.Quote, clientName string) (*model.Receipt, string, error)
	// Get returns a stored receipt.
	Get(id string) (*model.Receipt, error)
	// VerifyToken checks a download token against a receipt id.
	VerifyToken(id, token string) error
	// RenderPDF renders the stored receipt as a PDF.
	RenderPDF(ctx context.Context, id string) ([]byte, error)
	// PDFURL builds the public download link of a receipt.
	PDFURL(baseURL string, receipt *model.Receipt, token string) string
}

// ReceiptConfig holds receipt issuing settings.
type ReceiptConfig struct {
	TTL        time.Duration
	SigningKey string
}

// ReceiptServiceImpl implements ReceiptService on top of a ReceiptCache.
type ReceiptServiceImpl struct {
	store    cache.ReceiptCache
	signer   *ReceiptTokenSigner
	renderer ReceiptRenderer
	breaker  *circuitbreaker.CircuitBreaker
	ttl      time.Duration
	now      func() time.Time
}

// NewReceiptService creates a receipt service. renderer and breaker may be nil;
// without a renderer RenderPDF always fails.
func NewReceiptService(store cache.ReceiptCache, renderer ReceiptRenderer, breaker *circuitbreaker.CircuitBreaker, cfg ReceiptConfig) *ReceiptServiceImpl {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultReceiptTTL
	}
	return &ReceiptServiceImpl{
		store:    store,
		signer:   NewReceiptTokenSigner(cfg.SigningKey),
		renderer: renderer,
		breaker:  breaker,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Issue implements ReceiptService.
func (s *ReceiptServiceImpl) Issue(quote *model.Quote, clientName string) (*model.Receipt, string, error) {
	if quote == nil {
		return nil, "", errors.New("quote is nil, cannot issue receipt")
	}

	createdAt := s.now().UTC()
	receipt := &model.Receipt{
		ID:         uuid.NewString(),
		ClientName: strings.TrimSpace(clientName),
		Quote:      *quote,
		CreatedAt:  createdAt,
		ExpiresAt:  createdAt.Add(s.ttl),
	}

	token, err := s.signer.Sign(receipt)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign receipt token: %w", err)
	}

	s.store.Set(receipt.ID, receipt)
	log.Debug().
		Str("receipt_id", receipt.ID).
		Time("expires_at", receipt.ExpiresAt).
		Msg("Receipt issued")

	return receipt, token, nil
}

// Get implements ReceiptService.
func (s *ReceiptServiceImpl) Get(id string) (*model.Receipt, error) {
	receipt, ok := s.store.Get(id)
	if !ok || receipt.Expired(s.now()) {
		return nil, ErrReceiptNotFound
	}
	return receipt, nil
}

// VerifyToken implements ReceiptService.
func (s *ReceiptServiceImpl) VerifyToken(id, token string) error {
	return s.signer.Verify(id, token)
}

// RenderPDF implements ReceiptService.
func (s *ReceiptServiceImpl) RenderPDF(ctx context.Context, id string) ([]byte, error) {
	receipt, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if s.renderer == nil {
		metrics.RecordPDFRender(RenderStatusError)
		return nil, fmt.Errorf("%w: no renderer configured", ErrReceiptRender)
	}

	var pdf []byte
	render := func() error {
		var renderErr error
		pdf, renderErr = s.renderer.Render(ctx, receipt)
		return renderErr
	}

	if s.breaker != nil {
		err = s.breaker.Execute(ctx, render)
	} else {
		err = render()
	}

	switch {
	case errors.Is(err, circuitbreaker.ErrCircuitOpen):
		metrics.RecordPDFRender(RenderStatusRejected)
		return nil, err
	case err != nil:
		metrics.RecordPDFRender(RenderStatusError)
		log.Error().Err(err).Str("receipt_id", id).Msg("Receipt rendering failed")
		return nil, fmt.Errorf("%w: %w", ErrReceiptRender, err)
	}

	metrics.RecordPDFRender(RenderStatusSuccess)
	return pdf, nil
}

// PDFURL implements ReceiptService.
func (s *ReceiptServiceImpl) PDFURL(baseURL string, receipt *model.Receipt, token string) string {
	return fmt.Sprintf("%s/api/receipts/%s/pdf?token=%s",
		strings.TrimRight(baseURL, "/"), url.PathEscape(receipt.ID), url.QueryEscape(token))
}
