// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/laundry-pricing/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

// MockReceiptService is a mock of service.ReceiptService.
type MockReceiptService struct {
	mock.Mock
}

func (m *MockReceiptService) Issue(quote *model.Quote, clientName string) (*model.Receipt, string, error) {
	args := m.Called(quote, clientName)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*model.Receipt), args.String(1), args.Error(2)
}

func (m *MockReceiptService) Get(id string) (*model.Receipt, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Receipt), args.Error(1)
}

func (m *MockReceiptService) VerifyToken(id, token string) error {
	args := m.Called(id, token)
	return args.Error(0)
}

func (m *MockReceiptService) RenderPDF(ctx context.Context, id string) ([]byte, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockReceiptService) PDFURL(baseURL string, receipt *model.Receipt, token string) string {
	args := m.Called(baseURL, receipt, token)
	return args.String(0)
}
