package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Ola-Segun/inventorysupabase-sub002/domain"
)

// InventoryServiceImpl implements domain.InventoryService
type InventoryServiceImpl struct {
	products domain.ProductRepository
	stores   domain.StoreRepository
}

// NewInventoryService creates a new inventory service
func NewInventoryService(products domain.ProductRepository, stores domain.StoreRepository) domain.InventoryService {
	return &InventoryServiceImpl{products: products, stores: stores}
}

// CreateProduct implements domain.InventoryService
func (s *InventoryServiceImpl) CreateProduct(ctx context.Context, product *domain.Product) error {
	if _, err := s.stores.FindByID(ctx, product.StoreID); err != nil {
		return err
	}

	existing, err := s.products.FindBySKU(ctx, product.StoreID, product.SKU)
	if err != nil && !errors.Is(err, domain.ErrProductNotFound) {
		return err
	}
	if existing != nil {
		return domain.ErrDuplicateSKU
	}

	if err := s.products.Create(ctx, product); err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// GetProduct implements domain.InventoryService
func (s *InventoryServiceImpl) GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return s.products.FindByID(ctx, id)
}

// ListProducts implements domain.InventoryService
func (s *InventoryServiceImpl) ListProducts(ctx context.Context, storeID uuid.UUID) ([]domain.Product, error) {
	return s.products.ListByStore(ctx, storeID)
}

// UpdateProduct implements domain.InventoryService. Stock is never written
// through this path; it only moves through AdjustStock and sales.
func (s *InventoryServiceImpl) UpdateProduct(ctx context.Context, product *domain.Product) error {
	current, err := s.products.FindByID(ctx, product.ID)
	if err != nil {
		return err
	}
	product.StoreID = current.StoreID
	product.Stock = current.Stock
	return s.products.Update(ctx, product)
}

// DeleteProduct implements domain.InventoryService
func (s *InventoryServiceImpl) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return s.products.Delete(ctx, id)
}

// ReceiveStock implements domain.InventoryService
func (s *InventoryServiceImpl) ReceiveStock(ctx context.Context, id uuid.UUID, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("received quantity must be positive, got %d", quantity)
	}
	return s.products.AdjustStock(ctx, id, quantity)
}
