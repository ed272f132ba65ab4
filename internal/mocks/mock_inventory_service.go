package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/Ola-Segun/inventorysupabase-sub002/domain"
)

// MockInventoryService implements domain.InventoryService interface for testing
type MockInventoryService struct {
	CreateProductFunc func(ctx context.Context, product *domain.Product) error
	GetProductFunc    func(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	ListProductsFunc  func(ctx context.Context, storeID uuid.UUID) ([]domain.Product, error)
	UpdateProductFunc func(ctx context.Context, product *domain.Product) error
	DeleteProductFunc func(ctx context.Context, id uuid.UUID) error
	ReceiveStockFunc  func(ctx context.Context, id uuid.UUID, quantity int) error
}

// NewMockInventoryService creates a new MockInventoryService with default behaviors
func NewMockInventoryService() *MockInventoryService {
	return &MockInventoryService{}
}

// CreateProduct creates a product
func (m *MockInventoryService) CreateProduct(ctx context.Context, product *domain.Product) error {
	if m.CreateProductFunc != nil {
		return m.CreateProductFunc(ctx, product)
	}
	// Default behavior: success
	return nil
}

// GetProduct loads a product by ID
func (m *MockInventoryService) GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	if m.GetProductFunc != nil {
		return m.GetProductFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrProductNotFound
}

// ListProducts lists a store's products
func (m *MockInventoryService) ListProducts(ctx context.Context, storeID uuid.UUID) ([]domain.Product, error) {
	if m.ListProductsFunc != nil {
		return m.ListProductsFunc(ctx, storeID)
	}
	// Default behavior: empty
	return nil, nil
}

// UpdateProduct updates a product
func (m *MockInventoryService) UpdateProduct(ctx context.Context, product *domain.Product) error {
	if m.UpdateProductFunc != nil {
		return m.UpdateProductFunc(ctx, product)
	}
	// Default behavior: success
	return nil
}

// DeleteProduct deletes a product
func (m *MockInventoryService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if m.DeleteProductFunc != nil {
		return m.DeleteProductFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}

// ReceiveStock adds received stock to a product
func (m *MockInventoryService) ReceiveStock(ctx context.Context, id uuid.UUID, quantity int) error {
	if m.ReceiveStockFunc != nil {
		return m.ReceiveStockFunc(ctx, id, quantity)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.InventoryService = (*MockInventoryService)(nil)
