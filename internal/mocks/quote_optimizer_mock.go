// Code generated manually. DO NOT EDIT.

package mocks

import (
	"github.com/guttosm/laundry-pricing/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

// MockQuoteOptimizer is a mock of service.QuoteOptimizer.
type MockQuoteOptimizer struct {
	mock.Mock
}

func (m *MockQuoteOptimizer) Optimize(raw map[string]any) (*model.Quote, error) {
	args := m.Called(raw)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Quote), args.Error(1)
}

func (m *MockQuoteOptimizer) Catalog() *model.PricingCatalog {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*model.PricingCatalog)
}
