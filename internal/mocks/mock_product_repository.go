package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/Ola-Segun/inventorysupabase-sub002/domain"
)

// MockProductRepository implements domain.ProductRepository interface for testing
type MockProductRepository struct {
	CreateFunc      func(ctx context.Context, product *domain.Product) error
	FindByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	FindBySKUFunc   func(ctx context.Context, storeID uuid.UUID, sku string) (*domain.Product, error)
	ListByStoreFunc func(ctx context.Context, storeID uuid.UUID) ([]domain.Product, error)
	UpdateFunc      func(ctx context.Context, product *domain.Product) error
	DeleteFunc      func(ctx context.Context, id uuid.UUID) error
	AdjustStockFunc func(ctx context.Context, id uuid.UUID, delta int) error
}

// NewMockProductRepository creates a new MockProductRepository with default behaviors
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{}
}

// Create creates a new product
func (m *MockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, product)
	}
	// Default behavior: success
	return nil
}

// FindByID finds a product by ID
func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrProductNotFound
}

// FindBySKU finds a product by store and SKU
func (m *MockProductRepository) FindBySKU(ctx context.Context, storeID uuid.UUID, sku string) (*domain.Product, error) {
	if m.FindBySKUFunc != nil {
		return m.FindBySKUFunc(ctx, storeID, sku)
	}
	// Default behavior: not found
	return nil, domain.ErrProductNotFound
}

// ListByStore lists a store's products
func (m *MockProductRepository) ListByStore(ctx context.Context, storeID uuid.UUID) ([]domain.Product, error) {
	if m.ListByStoreFunc != nil {
		return m.ListByStoreFunc(ctx, storeID)
	}
	// Default behavior: empty
	return nil, nil
}

// Update updates an existing product
func (m *MockProductRepository) Update(ctx context.Context, product *domain.Product) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, product)
	}
	// Default behavior: success
	return nil
}

// Delete deletes a product
func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}

// AdjustStock applies a stock delta
func (m *MockProductRepository) AdjustStock(ctx context.Context, id uuid.UUID, delta int) error {
	if m.AdjustStockFunc != nil {
		return m.AdjustStockFunc(ctx, id, delta)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.ProductRepository = (*MockProductRepository)(nil)
