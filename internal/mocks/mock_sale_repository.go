package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Ola-Segun/inventorysupabase-sub002/domain"
)

// MockSaleRepository implements domain.SaleRepository interface for testing
type MockSaleRepository struct {
	CreateFunc          func(ctx context.Context, sale *domain.Sale, invoice *domain.Invoice) error
	FindByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Sale, error)
	FindInvoiceByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	DailyTotalsFunc     func(ctx context.Context, storeID uuid.UUID, day time.Time) (*domain.DailySalesReport, error)
}

// NewMockSaleRepository creates a new MockSaleRepository with default behaviors
func NewMockSaleRepository() *MockSaleRepository {
	return &MockSaleRepository{}
}

// Create persists a sale with its invoice
func (m *MockSaleRepository) Create(ctx context.Context, sale *domain.Sale, invoice *domain.Invoice) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, sale, invoice)
	}
	// Default behavior: success
	return nil
}

// FindByID finds a sale by ID
func (m *MockSaleRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Sale, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrSaleNotFound
}

// FindInvoiceByID finds an invoice by ID
func (m *MockSaleRepository) FindInvoiceByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	if m.FindInvoiceByIDFunc != nil {
		return m.FindInvoiceByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrInvoiceNotFound
}

// DailyTotals aggregates one store's sales for one day
func (m *MockSaleRepository) DailyTotals(ctx context.Context, storeID uuid.UUID, day time.Time) (*domain.DailySalesReport, error) {
	if m.DailyTotalsFunc != nil {
		return m.DailyTotalsFunc(ctx, storeID, day)
	}
	// Default behavior: empty report
	return &domain.DailySalesReport{StoreID: storeID, Day: day.Format("2006-01-02")}, nil
}

// Compile-time interface compliance verification
var _ domain.SaleRepository = (*MockSaleRepository)(nil)
