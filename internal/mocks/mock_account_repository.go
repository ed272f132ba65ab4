package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Ola-Segun/inventorysupabase-sub002/domain"
)

// MockAccountRepository implements domain.AccountRepository interface for testing
type MockAccountRepository struct {
	CreateFunc                 func(ctx context.Context, account *domain.Account) error
	FindByEmailFunc            func(ctx context.Context, email string) (*domain.Account, error)
	FindByIDFunc               func(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	UpdateFunc                 func(ctx context.Context, account *domain.Account) error
	IncrementLoginAttemptsFunc func(ctx context.Context, id uuid.UUID) (int, error)
	SetLockFunc                func(ctx context.Context, id uuid.UUID, until time.Time) error
	ResetLoginAttemptsFunc     func(ctx context.Context, id uuid.UUID) error
	ConfirmEmailFunc           func(ctx context.Context, id uuid.UUID) error
}

// NewMockAccountRepository creates a new MockAccountRepository with default behaviors
func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{}
}

// Create creates a new account
func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	// Default behavior: success
	return nil
}

// FindByEmail finds an account by email
func (m *MockAccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	// Default behavior: not found
	return nil, domain.ErrAccountNotFound
}

// FindByID finds an account by ID
func (m *MockAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrAccountNotFound
}

// Update updates an existing account
func (m *MockAccountRepository) Update(ctx context.Context, account *domain.Account) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, account)
	}
	// Default behavior: success
	return nil
}

// IncrementLoginAttempts atomically increments the attempt counter
func (m *MockAccountRepository) IncrementLoginAttempts(ctx context.Context, id uuid.UUID) (int, error) {
	if m.IncrementLoginAttemptsFunc != nil {
		return m.IncrementLoginAttemptsFunc(ctx, id)
	}
	// Default behavior: first failure
	return 1, nil
}

// SetLock stores a lockout expiry
func (m *MockAccountRepository) SetLock(ctx context.Context, id uuid.UUID, until time.Time) error {
	if m.SetLockFunc != nil {
		return m.SetLockFunc(ctx, id, until)
	}
	// Default behavior: success
	return nil
}

// ResetLoginAttempts zeroes the counter and clears the lock
func (m *MockAccountRepository) ResetLoginAttempts(ctx context.Context, id uuid.UUID) error {
	if m.ResetLoginAttemptsFunc != nil {
		return m.ResetLoginAttemptsFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}

// ConfirmEmail marks the account's email as confirmed
func (m *MockAccountRepository) ConfirmEmail(ctx context.Context, id uuid.UUID) error {
	if m.ConfirmEmailFunc != nil {
		return m.ConfirmEmailFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.AccountRepository = (*MockAccountRepository)(nil)
