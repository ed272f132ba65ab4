package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/Ola-Segun/inventorysupabase-sub002/domain"
)

// MockSalesService implements domain.SalesService interface for testing
type MockSalesService struct {
	RecordSaleFunc func(ctx context.Context, storeID, cashierID uuid.UUID, lines []domain.SaleLine) (*domain.Sale, *domain.Invoice, error)
	GetSaleFunc    func(ctx context.Context, id uuid.UUID) (*domain.Sale, error)
	GetInvoiceFunc func(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
}

// NewMockSalesService creates a new MockSalesService with default behaviors
func NewMockSalesService() *MockSalesService {
	return &MockSalesService{}
}

// RecordSale records a sale
func (m *MockSalesService) RecordSale(ctx context.Context, storeID, cashierID uuid.UUID, lines []domain.SaleLine) (*domain.Sale, *domain.Invoice, error) {
	if m.RecordSaleFunc != nil {
		return m.RecordSaleFunc(ctx, storeID, cashierID, lines)
	}
	// Default behavior: empty sale rejected
	return nil, nil, domain.ErrEmptySale
}

// GetSale fetches a sale by ID
func (m *MockSalesService) GetSale(ctx context.Context, id uuid.UUID) (*domain.Sale, error) {
	if m.GetSaleFunc != nil {
		return m.GetSaleFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrSaleNotFound
}

// GetInvoice fetches an invoice by ID
func (m *MockSalesService) GetInvoice(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	if m.GetInvoiceFunc != nil {
		return m.GetInvoiceFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrInvoiceNotFound
}

// Compile-time interface compliance verification
var _ domain.SalesService = (*MockSalesService)(nil)
