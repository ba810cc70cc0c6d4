// Package service contains the business logic for the laundry pricing service.
package service

import (
	"time"

	"github.com/guttosm/laundry-pricing/internal/catalog"
	"github.com/guttosm/laundry-pricing/internal/domain/model"
	"github.com/guttosm/laundry-pricing/internal/metrics"
	"github.com/rs/zerolog/log"
)

// Quote outcome labels recorded in metrics.
const (
	QuoteStatusSuccess          = "success"
	QuoteStatusValidationError  = "validation_error"
	QuoteStatusCapacityExceeded = "capacity_exceeded"
	QuoteStatusSolverError      = "solver_error"
)

// QuoteOptimizer prices orders at minimal total cost.
type QuoteOptimizer interface {
	Optimize(raw map[string]any) (*model.Quote, error)
	Catalog() *model.PricingCatalog
}

// Option configures a QuoteOptimizerService.
type Option func(*QuoteOptimizerService)

// QuoteOptimizerService implements QuoteOptimizer. It holds no per-call
// state and is safe for concurrent use.
type QuoteOptimizerService struct {
	catalog    *model.PricingCatalog
	normalizer *OrderNormalizer
	solver     Solver
}

// NewQuoteOptimizerService creates a QuoteOptimizerService using the
// embedded catalog and the DP solver unless options say otherwise.
func NewQuoteOptimizerService(opts ...Option) *QuoteOptimizerService {
	s := &QuoteOptimizerService{}
	for _, opt := range opts {
		opt(s)
	}
	if s.catalog == nil {
		s.catalog = catalog.Default()
	}
	if s.solver == nil {
		s.solver = NewDPSolver()
	}
	s.normalizer = NewOrderNormalizer(s.catalog)
	return s
}

// WithCatalog sets the pricing catalog.
func WithCatalog(c *model.PricingCatalog) Option {
	return func(s *QuoteOptimizerService) {
		if c != nil {
			s.catalog = c
		}
	}
}

// WithSolver replaces the solver implementation.
func WithSolver(solver Solver) Option {
	return func(s *QuoteOptimizerService) {
		s.solver = solver
	}
}

// Catalog returns the catalog the optimizer prices against.
func (s *QuoteOptimizerService) Catalog() *model.PricingCatalog {
	return s.catalog
}

// Optimize normalizes raw, solves for the optimizable items and returns the
// total cost with its breakdown.
func (s *QuoteOptimizerService) Optimize(raw map[string]any) (*model.Quote, error) {
	order, err := s.normalizer.Normalize(raw)
	if err != nil {
		metrics.RecordQuote(QuoteStatusValidationError)
		return nil, err
	}

	if order.IsEmpty() {
		log.Debug().Msg("Empty order, nothing to price")
		metrics.RecordQuote(QuoteStatusSuccess)
		return model.EmptyQuote(), nil
	}

	pieces, shirts := order.Pieces(), order.Shirts()
	if ceiling := s.catalog.CapacityCeiling(); pieces+shirts > ceiling {
		metrics.RecordQuote(QuoteStatusCapacityExceeded)
		return nil, &CapacityExceededError{Requested: pieces + shirts, Ceiling: ceiling}
	}

	var sol *Solution
	if pieces+shirts > 0 {
		problem := Problem{
			Pieces:     pieces,
			Shirts:     shirts,
			PiecePrice: s.catalog.FixedPrices[model.ItemVariablePiece],
			ShirtPrice: s.catalog.FixedPrices[model.ItemShirt],
			MixedTiers: s.catalog.MixedPackTiers,
			ShirtTiers: s.catalog.SingleCategoryPackTiers,
		}

		start := time.Now()
		sol, err = s.solver.Solve(problem)
		metrics.RecordSolve(time.Since(start), pieces+shirts)
		if err != nil {
			log.Error().Err(err).Int("pieces", pieces).Int("shirts", shirts).Msg("Solver failed")
			metrics.RecordQuote(QuoteStatusSolverError)
			return nil, err
		}
	}

	breakdown := BuildBreakdown(order, sol, s.catalog)
	log.Debug().
		Int("pieces", pieces).
		Int("shirts", shirts).
		Str("total", breakdown.Costs.Total.String()).
		Msg("Order priced")

	metrics.RecordQuote(QuoteStatusSuccess)
	return &model.Quote{
		TotalCost: breakdown.Costs.Total,
		Breakdown: breakdown,
	}, nil
}
