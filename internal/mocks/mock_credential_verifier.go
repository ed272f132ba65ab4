package mocks

import (
	"context"

	"github.com/Ola-Segun/inventorysupabase-sub002/domain"
)

// MockCredentialVerifier implements domain.CredentialVerifier interface for testing
type MockCredentialVerifier struct {
	VerifyFunc func(ctx context.Context, email, password string) (*domain.Session, error)
}

// NewMockCredentialVerifier creates a new MockCredentialVerifier with default behaviors
func NewMockCredentialVerifier() *MockCredentialVerifier {
	return &MockCredentialVerifier{}
}

// Verify checks credentials against the backing auth store
func (m *MockCredentialVerifier) Verify(ctx context.Context, email, password string) (*domain.Session, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, email, password)
	}
	// Default behavior: rejected
	return nil, domain.ErrInvalidCredentials
}

// Compile-time interface compliance verification
var _ domain.CredentialVerifier = (*MockCredentialVerifier)(nil)
