package mocks

import (
	"github.com/google/uuid"

	"github.com/Ola-Segun/inventorysupabase-sub002/domain"
)

// MockTokenService implements domain.TokenService interface for testing
type MockTokenService struct {
	GenerateAccessTokenFunc  func(accountID uuid.UUID, role, storeID, sessionID string) (string, error)
	GenerateRefreshTokenFunc func(accountID uuid.UUID, role, storeID, sessionID string) (string, error)
	ValidateAccessTokenFunc  func(token string) (*domain.TokenClaims, error)
	ValidateRefreshTokenFunc func(token string) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// GenerateAccessToken generates an access token
func (m *MockTokenService) GenerateAccessToken(accountID uuid.UUID, role, storeID, sessionID string) (string, error) {
	if m.GenerateAccessTokenFunc != nil {
		return m.GenerateAccessTokenFunc(accountID, role, storeID, sessionID)
	}
	// Default behavior: static token
	return "access_token_" + accountID.String(), nil
}

// GenerateRefreshToken generates a refresh token
func (m *MockTokenService) GenerateRefreshToken(accountID uuid.UUID, role, storeID, sessionID string) (string, error) {
	if m.GenerateRefreshTokenFunc != nil {
		return m.GenerateRefreshTokenFunc(accountID, role, storeID, sessionID)
	}
	// Default behavior: static token
	return "refresh_token_" + accountID.String(), nil
}

// ValidateAccessToken validates an access token
func (m *MockTokenService) ValidateAccessToken(token string) (*domain.TokenClaims, error) {
	if m.ValidateAccessTokenFunc != nil {
		return m.ValidateAccessTokenFunc(token)
	}
	// Default behavior: invalid
	return nil, domain.ErrTokenInvalid
}

// ValidateRefreshToken validates a refresh token
func (m *MockTokenService) ValidateRefreshToken(token string) (*domain.TokenClaims, error) {
	if m.ValidateRefreshTokenFunc != nil {
		return m.ValidateRefreshTokenFunc(token)
	}
	// Default behavior: invalid
	return nil, domain.ErrTokenInvalid
}

// Compile-time interface compliance verification
var _ domain.TokenService = (*MockTokenService)(nil)
