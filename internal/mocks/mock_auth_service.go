package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/Ola-Segun/inventorysupabase-sub002/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	RegisterFunc   func(ctx context.Context, email, name, phone, password, role string, storeID *uuid.UUID) (*domain.Account, error)
	LoginFunc      func(ctx context.Context, email, password string, client *domain.ClientContext) (*domain.AuthResult, error)
	LogoutFunc     func(ctx context.Context, sessionID string) error
	KeepAliveFunc  func(ctx context.Context, sessionID string) error
	GetProfileFunc func(ctx context.Context, accountID uuid.UUID) (*domain.Account, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// Register registers a new account
func (m *MockAuthService) Register(ctx context.Context, email, name, phone, password, role string, storeID *uuid.UUID) (*domain.Account, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, email, name, phone, password, role, storeID)
	}
	// Default behavior: minimal account
	return &domain.Account{ID: uuid.New(), Email: email, Name: name, Phone: phone, Role: role, Status: domain.StatusActive, StoreID: storeID}, nil
}

// Login authenticates credentials
func (m *MockAuthService) Login(ctx context.Context, email, password string, client *domain.ClientContext) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password, client)
	}
	// Default behavior: rejected
	return nil, &domain.CredentialsError{}
}

// Logout ends a session
func (m *MockAuthService) Logout(ctx context.Context, sessionID string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, sessionID)
	}
	// Default behavior: success
	return nil
}

// KeepAlive extends a session
func (m *MockAuthService) KeepAlive(ctx context.Context, sessionID string) error {
	if m.KeepAliveFunc != nil {
		return m.KeepAliveFunc(ctx, sessionID)
	}
	// Default behavior: success
	return nil
}

// GetProfile loads an account by ID
func (m *MockAuthService) GetProfile(ctx context.Context, accountID uuid.UUID) (*domain.Account, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, accountID)
	}
	// Default behavior: not found
	return nil, domain.ErrAccountNotFound
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)
