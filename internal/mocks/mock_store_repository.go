package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/Ola-Segun/inventorysupabase-sub002/domain"
)

// MockStoreRepository implements domain.StoreRepository interface for testing
type MockStoreRepository struct {
	CreateOrganizationFunc   func(ctx context.Context, org *domain.Organization) error
	FindOrganizationByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Organization, error)
	CreateFunc               func(ctx context.Context, store *domain.Store) error
	FindByIDFunc             func(ctx context.Context, id uuid.UUID) (*domain.Store, error)
	ListFunc                 func(ctx context.Context) ([]domain.Store, error)
	ListByOrganizationFunc   func(ctx context.Context, orgID uuid.UUID) ([]domain.Store, error)
	UpdateFunc               func(ctx context.Context, store *domain.Store) error
}

// NewMockStoreRepository creates a new MockStoreRepository with default behaviors
func NewMockStoreRepository() *MockStoreRepository {
	return &MockStoreRepository{}
}

// CreateOrganization creates a new organization
func (m *MockStoreRepository) CreateOrganization(ctx context.Context, org *domain.Organization) error {
	if m.CreateOrganizationFunc != nil {
		return m.CreateOrganizationFunc(ctx, org)
	}
	// Default behavior: success
	return nil
}

// FindOrganizationByID finds an organization by ID
func (m *MockStoreRepository) FindOrganizationByID(ctx context.Context, id uuid.UUID) (*domain.Organization, error) {
	if m.FindOrganizationByIDFunc != nil {
		return m.FindOrganizationByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrStoreNotFound
}

// Create creates a new store
func (m *MockStoreRepository) Create(ctx context.Context, store *domain.Store) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, store)
	}
	// Default behavior: success
	return nil
}

// FindByID finds a store by ID
func (m *MockStoreRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Store, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrStoreNotFound
}

// List lists all stores
func (m *MockStoreRepository) List(ctx context.Context) ([]domain.Store, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	// Default behavior: empty
	return nil, nil
}

// ListByOrganization lists stores of an organization
func (m *MockStoreRepository) ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]domain.Store, error) {
	if m.ListByOrganizationFunc != nil {
		return m.ListByOrganizationFunc(ctx, orgID)
	}
	// Default behavior: empty
	return nil, nil
}

// Update updates an existing store
func (m *MockStoreRepository) Update(ctx context.Context, store *domain.Store) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, store)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.StoreRepository = (*MockStoreRepository)(nil)
